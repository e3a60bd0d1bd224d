package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/loader"
	"github.com/ridoystarlord/entigen/runner"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables and the classes they map to",
	Long: `List every base table with the package folder and class name it would be
generated as. Nothing is written.

Examples:
  entigen tables
  entigen tables --prefix-file fixes.json
  entigen tables --from-snapshot schema.yaml
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

		fixes, err := loader.LoadPrefixFixes(prefixFile)
		if err != nil {
			exitWithError("Loading prefix file", err)
		}

		plans := runner.Plan(snap, fixes, mode)
		if len(plans) == 0 {
			fmt.Println("📋 No tables found")
			return
		}

		cyan := color.New(color.FgCyan)
		yellow := color.New(color.FgYellow)

		skipped := 0
		fmt.Printf("📋 Tables (%d):\n", len(plans))
		for _, p := range plans {
			if p.Skipped {
				skipped++
				yellow.Printf("   - %s (skipped: name ends with a digit)\n", p.Table)
				continue
			}
			fmt.Printf("   - %s → ", p.Table)
			cyan.Printf("%s.%s", p.PackageSuffix, p.ClassName)
			if p.Composite {
				fmt.Printf(" (+ %sPK)", p.ClassName)
			}
			fmt.Printf(" [%d columns]\n", p.Columns)
		}

		fmt.Printf("\n%d to generate, %d skipped\n", len(plans)-skipped, skipped)
	},
}
