package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/validator"
	"github.com/spf13/cobra"
)

var validateFormat string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every column type can be mapped",
	Long: `Check every eligible table the way generate would, but report all
unsupported column types at once instead of stopping at the first. Nothing is
written. Exits with status 1 when any column cannot be mapped.

Examples:
  entigen validate
  entigen validate --mode dto
  entigen validate --format json
`,
	Run: func(cmd *cobra.Command, args []string) {
		mode, err := generator.ParseMode(modeName)
		if err != nil {
			exitWithError("Invalid --mode", err)
		}

		settings, err := loadSettings()
		if err != nil {
			exitWithError("Loading settings", err)
		}

		snap, err := loadSnapshot(cmd.Context(), settings)
		if err != nil {
			exitWithError("Loading schema", err)
		}

		result := validator.ValidateSnapshot(snap, mode)
		if validateFormat == "json" {
			err = outputJSON(result)
		} else {
			outputText(result)
		}
		if err != nil {
			exitWithError("Writing result", err)
		}

		if !result.Valid {
			os.Exit(1)
		}
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "text", "Output format: text or json")
}

func outputJSON(result *validator.ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputText(result *validator.ValidationResult) {
	if result.Valid {
		color.Green("✅ All column types map (%d tables checked)", result.Tables)
	} else {
		color.Red("❌ %d column(s) cannot be mapped (%d tables checked)", len(result.Errors), result.Tables)
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\n🔴 Errors (%d):\n", len(result.Errors))
		for i, e := range result.Errors {
			fmt.Printf("  %d. [%s].%s %s: %s\n", i+1, e.Table, e.Column, e.SQLType, e.Message)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("\n🟡 Warnings (%d):\n", len(result.Warnings))
		for i, w := range result.Warnings {
			fmt.Printf("  %d. [%s]: %s\n", i+1, w.Table, w.Message)
		}
	}

	if len(result.Info) > 0 {
		fmt.Printf("\n🔵 Info (%d):\n", len(result.Info))
		for i, info := range result.Info {
			fmt.Printf("  %d. [%s]: %s\n", i+1, info.Table, info.Message)
		}
	}
}
