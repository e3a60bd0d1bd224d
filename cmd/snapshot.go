package cmd

import (
	"errors"
	"fmt"

	"github.com/ridoystarlord/entigen/introspect"
	"github.com/ridoystarlord/entigen/loader"
	"github.com/spf13/cobra"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save the database schema metadata to a YAML file",
	Long: `Read tables and columns from the database and save them as YAML. The file
can be fed back with --from-snapshot to generate without a database; the
output is identical to a live run against the same schema.

Examples:
  entigen snapshot                    # Write schema.yaml
  entigen snapshot --file legacy.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		if snapshotFile != "" {
			exitWithError("Snapshot", errors.New("--from-snapshot cannot be combined with snapshot"))
		}

		settings, err := loadSettings()
		if err != nil {
			exitWithError("Loading settings", err)
		}
		if err := settings.Validate(); err != nil {
			exitWithError("Loading settings", err)
		}

		src, err := introspect.Connect(cmd.Context(), settings)
		if err != nil {
			exitWithError("Connecting", err)
		}
		defer src.Close()

		snap, err := introspect.LoadSnapshot(cmd.Context(), src, settings.Schema)
		if err != nil {
			exitWithError("Loading schema", err)
		}

		if err := loader.WriteSnapshotYAML(snapshotOut, snap); err != nil {
			exitWithError("Writing snapshot", err)
		}

		fmt.Printf("✅ Saved %d tables and %d columns to %s\n", len(snap.Tables), len(snap.Columns), snapshotOut)
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "file", "f", "schema.yaml", "Snapshot file to write")
}
