package cmd

import (
	"fmt"

	"github.com/rustyeddy/forecast/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate scenario files",
	Long: `Manage scenario configuration files.

Subcommands:
  init     - Generate the default scenario file
  validate - Validate an existing scenario file

Examples:
  forecast config init --output retirement.yaml
  forecast config validate --file retirement.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the default scenario file",
	Long: `Create a scenario file holding the built-in aggressive and conservative
profiles, ready to edit.

Example:
  forecast config init --output retirement.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario file",
	Long: `Check that a scenario file parses and passes the same validation the
engine applies before a batch starts.

Example:
  forecast config validate --file retirement.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "scenario.yaml", "output scenario file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to scenario file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default scenario: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  forecast run --config %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Scenario is valid: %s\n", configValidatePath)
	fmt.Printf("  %d profile(s), %d runs x %d periods from %.2f\n",
		len(cfg.Profiles), cfg.Batch.Sims, cfg.Batch.Periods, cfg.Batch.Start)
	return nil
}
