// Command type3 generates Express backend projects.
package main

import (
	"os"

	"github.com/type3-dev/type3/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
