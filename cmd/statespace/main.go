// Command statespace solves river crossing and frog leaping puzzles by
// searching their state graphs, streaming events and archiving runs along
// the way.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/statespace-go/internal/ux"
)

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if err := applyConfigFile(); err != nil {
			ux.Errorf("%v", err)
			os.Exit(1)
		}
		if flagNoColor {
			ux.Plain()
		} else {
			ux.AutoDetect()
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}
