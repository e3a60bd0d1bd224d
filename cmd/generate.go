package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ridoystarlord/entigen/generator"
	"github.com/ridoystarlord/entigen/loader"
	"github.com/ridoystarlord/entigen/runner"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one class per table (default command)",
	Long: `Generate one class per base table.

Tables whose name ends with a digit are skipped. The first column with an
unsupported type aborts the run; files written before it are kept.

Examples:
  entigen generate                      # Entity classes into ./output
  entigen generate -o ../output -m dto  # DTO classes into ../output
  entigen generate --prefix-file fixes.json
`,
	Run: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	mode, err := generator.ParseMode(modeName)
	if err != nil {
		exitWithError("Invalid --mode", err)
	}

	settings, err := loadSettings()
	if err != nil {
		exitWithError("Loading settings", err)
	}
	if settings.BasePackage == "" {
		exitWithError("Loading settings", errors.New("BASE_PACKAGE not set (in .env or environment)"))
	}

	snap, err := loadSnapshot(cmd.Context(), settings)
	if err != nil {
		exitWithError("Loading schema", err)
	}

	fixes, err := loader.LoadPrefixFixes(prefixFile)
	if err != nil {
		exitWithError("Loading prefix file", err)
	}

	_, err = runner.Generate(snap, runner.Options{
		OutputDir:   outputDir,
		BasePackage: settings.BasePackage,
		Mode:        mode,
		Prefixes:    fixes,
		Reporter:    newConsoleReporter(os.Stdout),
	})
	if err != nil {
		exitWithError("Generating classes", err)
	}

	if mode == generator.ModeDTO {
		color.Green("✅ DTO class generation completed.")
	} else {
		color.Green("✅ Entity class generation completed.")
	}
}

type consoleReporter struct {
	out   io.Writer
	label *color.Color
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{out: out, label: color.New(color.FgGreen)}
}

func (r *consoleReporter) Generated(path string) {
	r.label.Fprint(r.out, "Generated: ")
	fmt.Fprintln(r.out, path)
}
