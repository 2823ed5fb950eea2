package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/provider"
)

func newSplitCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "split <id> <amount:main[:sub]>...",
		Short: "Split a transaction into amount-conserving parts",
		Long: "Split a transaction into several categorized parts. Part amounts " +
			"must sum to the original amount exactly; each part is written as " +
			"amount:main or amount:main:sub.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := parseSplitParts(args[1:])
			if err != nil {
				return err
			}

			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			created, err := w.data.SplitTransaction(args[0], parts)
			if err != nil {
				return err
			}
			if err := w.data.SaveHistory(); err != nil {
				return err
			}
			w.audit("split", args[0], len(created))

			fmt.Printf("Split %s into %d transactions:\n", args[0], len(created))
			for _, t := range created {
				fmt.Printf("  %s  %s  %s\n", t.ID, t.Amount, formatCategory(t.Category))
			}
			return nil
		},
	}
}

func parseSplitParts(args []string) ([]provider.SplitPart, error) {
	parts := make([]provider.SplitPart, len(args))
	for i, arg := range args {
		fields := strings.SplitN(arg, ":", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed part %q: want amount:main[:sub]", arg)
		}
		parts[i] = provider.SplitPart{
			Amount:   fields[0],
			Category: model.Category{Main: fields[1]},
		}
		if len(fields) == 3 {
			parts[i].Category.Sub = fields[2]
		}
	}
	return parts, nil
}
