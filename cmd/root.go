package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bazar",
	Short: "GoBazar storefront CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("NO_BANNER") != "" {
			return
		}
		figure.NewFigure("GoBazar", "slant", true).Print()
		fmt.Println()
	},
}

// Execute runs the CLI. Registered commands are applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
