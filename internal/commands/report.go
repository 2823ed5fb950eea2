package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Expense summaries over history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "monthly",
		Short: "Total expenses per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, row := range w.data.MonthlyTotals() {
				fmt.Printf("%s  %12s\n", row.Month, row.Total.StringFixed(2))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "yearly",
		Short: "Total expenses per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, row := range w.data.YearlyTotals() {
				fmt.Printf("%s  %12s\n", row.Year, row.Total.StringFixed(2))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "trends",
		Short: "Daily spending, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			for _, row := range w.data.SpendingTrends() {
				fmt.Printf("%s  %12s\n", row.Date, row.Total.StringFixed(2))
			}
			return nil
		},
	})

	return cmd
}
