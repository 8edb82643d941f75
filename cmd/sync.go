package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync cycle and print its report",
	Long:  `Fetches both feeds once, reconciles them into the store and prints the cycle report as JSON. Exits non-zero when any pass did not commit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		syncer, err := rt.syncer(cmd.Context())
		if err != nil {
			return err
		}

		report, err := syncer.Trigger(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		if !report.OK() {
			return fmt.Errorf("sync cycle %s did not fully commit", report.ID)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
