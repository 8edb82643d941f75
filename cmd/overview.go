package cmd

import (
	"fmt"

	"catalog-sync/feature/catalog"

	"github.com/spf13/cobra"
)

// overviewCmd represents the overview command
var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print per-table row counts of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		overview, err := catalog.NewService(rt.db, rt.logger, 0).Overview(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to count catalog: %w", err)
		}

		fmt.Println(overview.Text())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(overviewCmd)
}
