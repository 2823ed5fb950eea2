package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/provider"
)

func newSetCategoryCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-category <id> <main> [sub]",
		Short: "Assign a category to a transaction",
		Long: "Assign a category to a transaction. The assignment is remembered " +
			"per description, so future imports with the same description can be " +
			"suggested automatically.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			cat := model.Category{Main: args[1]}
			if len(args) == 3 {
				cat.Sub = args[2]
			}

			updated, err := w.data.UpdateTransactionCategory(args[0], cat)
			if err != nil {
				return err
			}
			if err := w.data.SaveHistory(); err != nil {
				return err
			}
			if err := w.data.SaveMemory(); err != nil {
				return err
			}
			w.audit("set-category", args[0], 1)

			fmt.Printf("Categorized %q as %s\n", updated.Description, formatCategory(updated.Category))
			return nil
		},
	}
}

func newSuggestCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <id|description>",
		Short: "Suggest a category for a transaction or description from past decisions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			cat, ok := resolveSuggestion(w.data, args[0])
			if !ok {
				color.New(color.FgYellow).Println("no suggestion")
				return nil
			}
			fmt.Println(formatCategory(&cat))
			return nil
		},
	}
}

// resolveSuggestion treats arg as a transaction ID when one matches,
// otherwise as a raw description.
func resolveSuggestion(data *provider.Local, arg string) (model.Category, bool) {
	if t, ok := data.Transaction(arg); ok {
		return data.AutoCategorize(t.Description)
	}
	return data.AutoCategorize(arg)
}

func formatCategory(c *model.Category) string {
	if c == nil || c.Main == "" {
		return "(uncategorized)"
	}
	if c.Sub == "" {
		return c.Main
	}
	return c.Main + " / " + c.Sub
}
