package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ridoystarlord/entigen/introspect"
	"github.com/ridoystarlord/entigen/loader"
	"github.com/ridoystarlord/entigen/schema"
	"github.com/ridoystarlord/entigen/utils"
	"github.com/spf13/cobra"
)

var (
	envFile      string
	outputDir    string
	prefixFile   string
	modeName     string
	snapshotFile string
)

var rootCmd = &cobra.Command{
	Use:   "entigen",
	Short: "Generate JPA entity and DTO classes from a database schema",
	Long: `entigen reads table and column metadata from MariaDB/MySQL (or PostgreSQL)
and writes one Java class per table, grouped into folders by table-name prefix.

Connection settings come from .env or the environment:
  DB_SERVER, DB_PORT, DB_USERNAME, DB_PASSWORD, DB_DATABASE, BASE_PACKAGE
  DB_DRIVER (mysql|postgres), DB_SCHEMA

Examples:

  entigen                         # Generate entity classes into ./output
  entigen --mode dto              # Generate plain DTO classes
  entigen tables                  # Preview class names without writing
  entigen snapshot -f schema.yaml # Save the schema for offline runs
  entigen --from-snapshot schema.yaml
`,
	Run: runGenerate,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "Load settings from this file instead of ./.env")
	flags.StringVarP(&outputDir, "output", "o", "output", "Output directory for generated classes")
	flags.StringVar(&prefixFile, "prefix-file", "fixed_table_name.json", "JSON/YAML mapping of table-name prefix corrections")
	flags.StringVarP(&modeName, "mode", "m", "entity", "Class flavour: entity or dto")
	flags.StringVar(&snapshotFile, "from-snapshot", "", "Read the schema from a YAML snapshot instead of the database")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(checkCmd)
}

func loadSettings() (*utils.Settings, error) {
	if envFile != "" {
		utils.LoadEnv(envFile)
	} else {
		utils.LoadEnv()
	}
	return utils.LoadSettings()
}

// loadSnapshot reads the schema either from --from-snapshot or from the
// configured database.
func loadSnapshot(ctx context.Context, settings *utils.Settings) (*schema.Snapshot, error) {
	if snapshotFile != "" {
		return loader.LoadSnapshotFromYAML(snapshotFile)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	src, err := introspect.Connect(ctx, settings)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return introspect.LoadSnapshot(ctx, src, settings.Schema)
}

func exitWithError(what string, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "❌ %s: ", what)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
