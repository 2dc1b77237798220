package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the forecast CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forecast version %s\n", version)
		fmt.Println("Monte Carlo projection of future investment portfolio values")
		fmt.Println("https://github.com/rustyeddy/forecast")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
