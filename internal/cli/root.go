package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/type3-dev/type3/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "type3",
	Short: "Scaffold Express backends in JavaScript or TypeScript",
	Long: `type3 generates a ready-to-run Express backend: server entry point,
routes, controllers, services and, on request, database models,
JWT authentication and structured logging. Dependencies are installed
with npm, yarn or pnpm.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command. An interrupt
// cancels the command context.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), errorLine(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("type3 %s\n", version.GetVersion()))
}
