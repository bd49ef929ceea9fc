package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/type3-dev/type3/internal/cli/wizard"
	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/internal/core/project"
	"github.com/type3-dev/type3/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Generate a new Express project",
	Long: `Generate a new Express backend in ./<project-name> and install its
dependencies.

Settings are taken, in order of precedence, from flags, a YAML preset
(--preset), the interactive wizard and built-in defaults. The wizard only
asks for settings not given by flags or the preset, and is skipped with
--non-interactive or when stdin is not a terminal.

Examples:
  type3 init                         Ask for everything
  type3 init api -l typescript -d postgresql --auth
  type3 init api --preset team.yaml --package-manager pnpm
  type3 init api --non-interactive --dry-run`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateInitFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("language", "l", "", "Source language: javascript or typescript (default: javascript)")
	initCmd.Flags().StringP("package-manager", "p", "", "Package manager: npm, yarn or pnpm (default: npm)")
	initCmd.Flags().StringP("database", "d", "", "Database: mongodb, mysql, postgresql or none (default: none)")
	initCmd.Flags().Bool("auth", config.DefaultAuth, "Generate JWT authentication")
	initCmd.Flags().Bool("log", config.DefaultLog, "Generate Winston/Morgan logging")
	initCmd.Flags().String("preset", "", "YAML file with project settings")
	initCmd.Flags().String("dir", "", "Parent directory of the project (default: current directory)")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags, preset and defaults")
	initCmd.Flags().Bool("skip-install", false, "Generate files without installing dependencies")
	initCmd.Flags().Bool("dry-run", false, "Show what would be generated without writing anything")
	initCmd.Flags().BoolP("verbose", "v", false, "Write debug logs to stderr")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateInitFlags rejects flag combinations that cannot work.
func validateInitFlags(cmd *cobra.Command, _ []string) error {
	if getBoolFlag(cmd, "dry-run") && getBoolFlag(cmd, "skip-install") {
		return errors.New("--dry-run already skips installation; drop --skip-install")
	}
	return nil
}

// collectOptions layers the preset and the flags. Only flags set on the
// command line count.
func collectOptions(cmd *cobra.Command, args []string) (config.Options, error) {
	var base config.Options
	if path := getStringFlag(cmd, "preset"); path != "" {
		preset, err := config.LoadPreset(path)
		if err != nil {
			return config.Options{}, err
		}
		base = preset
	}

	flags := config.Options{
		Language:       getStringFlag(cmd, "language"),
		PackageManager: getStringFlag(cmd, "package-manager"),
		Database:       getStringFlag(cmd, "database"),
	}
	if len(args) > 0 {
		flags.Name = args[0]
	}
	if cmd.Flags().Changed("auth") {
		flags.Auth = config.Bool(getBoolFlag(cmd, "auth"))
	}
	if cmd.Flags().Changed("log") {
		flags.Log = config.Bool(getBoolFlag(cmd, "log"))
	}
	return config.Merge(base, flags), nil
}

// runInit executes the generation workflow.
func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	d := GetDeps()
	if d == nil {
		InitDependencies()
		d = GetDeps()
	}
	if getBoolFlag(cmd, "verbose") {
		d.EnableVerbose(cmd.ErrOrStderr())
	}
	if err := d.EnsureServices(); err != nil {
		return err
	}

	known, err := collectOptions(cmd, args)
	if err != nil {
		return err
	}

	// Step 1: Ask for what flags and preset left open
	var answers config.Options
	if !getBoolFlag(cmd, "non-interactive") && !d.Headless.IsHeadless() {
		if qs := wizard.DefaultQuestions(config.Defaults(), known); len(qs) > 0 {
			result, err := wizard.Run(ctx, qs)
			if err != nil {
				if errors.Is(err, wizard.ErrCancelled) {
					_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled. Nothing was generated.")
					return nil
				}
				return err
			}
			answers = result.Options()
		}
	}

	// Step 2: Validate the merged configuration
	p, err := config.New(config.Merge(answers, known))
	if err != nil {
		return err
	}

	dir := getStringFlag(cmd, "dir")
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	// Step 3: Run the pipeline behind a spinner
	out := cmd.OutOrStdout()
	theme := outputTheme(out)
	dryRun := getBoolFlag(cmd, "dry-run")

	var spin ui.Spinner = nopSpinner{}
	if !dryRun {
		spin = ui.NewProgress(theme, d.Headless, out).Spinner(stageTitle(project.StateIdle, p))
	}
	reporter := project.ReporterFunc(func(_, to project.State) {
		if !to.Terminal() {
			spin.SetTitle(stageTitle(to, p))
		}
	})

	orch := project.NewOrchestrator(d.Filesystem(dir), d.Generator, d.Installer,
		project.WithReporter(reporter),
		project.WithLogger(d.Logger),
	)
	result, err := orch.Run(ctx, p, project.RunOptions{
		DryRun:      dryRun,
		SkipInstall: getBoolFlag(cmd, "skip-install"),
	})
	spin.Stop()
	if err != nil {
		if errors.Is(err, project.ErrInterrupted) {
			return fmt.Errorf("generation interrupted: %w", err)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if dryRun {
		printPlan(out, theme, p, result)
		return nil
	}
	printSummary(out, theme, p, result)
	return nil
}

// stageTitle is the spinner text for state s.
func stageTitle(s project.State, p config.Project) string {
	switch s {
	case project.StateProvisioning:
		return "Creating directories"
	case project.StateGenerating:
		return "Writing files"
	case project.StateResolving:
		return "Resolving dependencies"
	case project.StateInstalling:
		return fmt.Sprintf("Installing dependencies with %s", p.PackageManager())
	}
	return fmt.Sprintf("Preparing %s", p.Name())
}

type nopSpinner struct{}

func (nopSpinner) SetTitle(string) {}
func (nopSpinner) Stop()           {}
