package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shavitns/expense-manager/internal/model"
)

func newListCommand(dir *string) *cobra.Command {
	var (
		query         string
		from, to      string
		main, sub     string
		uncategorized bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			var txns []model.Transaction
			switch {
			case uncategorized:
				txns = w.data.Uncategorized()
			case sub != "":
				txns = w.data.TransactionsBySubcategory(main, sub)
			case main != "":
				txns = w.data.TransactionsByCategory(main)
			case from != "" || to != "":
				txns = w.data.FilterByDateRange(from, to)
			default:
				txns = w.data.SearchTransactions(query)
			}

			for _, t := range txns {
				fmt.Printf("%s  %s  %10s  %-24s %s\n",
					t.ID, t.Date, t.Amount, formatCategory(t.Category), t.FlatDescription())
			}
			fmt.Printf("%d transactions\n", len(txns))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "substring search over all fields")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&main, "category", "", "filter by main category")
	cmd.Flags().StringVar(&sub, "sub", "", "filter by subcategory (requires --category)")
	cmd.Flags().BoolVar(&uncategorized, "uncategorized", false, "only uncategorized transactions")

	return cmd
}

func newDeleteCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.data.DeleteTransaction(args[0]); err != nil {
				return err
			}
			if err := w.data.SaveHistory(); err != nil {
				return err
			}
			w.audit("delete", args[0], 1)
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
