package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ridoystarlord/entigen/introspect"
	"github.com/ridoystarlord/entigen/naming"
	"github.com/ridoystarlord/entigen/utils"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity and report schema size",
	Long: `Connect with the configured settings, read the metadata and report what
was found.

Examples:
  entigen check                    # Check current state
  entigen check --timeout 10s      # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := loadSettings()
		if err != nil {
			exitWithError("Loading settings", err)
		}
		if err := settings.Validate(); err != nil {
			exitWithError("Loading settings", err)
		}

		if err := checkDatabase(cmd.Context(), settings); err != nil {
			exitWithError("Schema check failed", err)
		}
		fmt.Println("✅ Schema check completed successfully")
	},
}

var checkTimeout time.Duration

func init() {
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t", 10*time.Second, "Timeout for schema check")
}

func checkDatabase(ctx context.Context, settings *utils.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	src, err := introspect.Connect(ctx, settings)
	if err != nil {
		return err
	}
	defer src.Close()

	fmt.Printf("🔌 Connected to %s at %s\n", settings.Driver, settings.Addr())

	snap, err := introspect.LoadSnapshot(ctx, src, settings.Schema)
	if err != nil {
		return err
	}

	eligible := 0
	for _, t := range snap.Tables {
		if !naming.EndsWithDigit(t.Name) {
			eligible++
		}
	}

	fmt.Printf("📊 Schema %s: %d tables (%d eligible), %d columns\n",
		settings.Schema, len(snap.Tables), eligible, len(snap.Columns))

	return nil
}
