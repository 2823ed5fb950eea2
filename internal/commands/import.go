package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shavitns/expense-manager/internal/decode"
	"github.com/shavitns/expense-manager/internal/model"
	"github.com/shavitns/expense-manager/internal/parser"
	"github.com/shavitns/expense-manager/internal/provider"
	"github.com/shavitns/expense-manager/internal/tabular"
)

func newImportCommand(dir *string) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement file into history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(*dir, args[0], source)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "statement source (defaults to config default_source)")

	return cmd
}

func runImport(dir, file, source string) error {
	if !decode.Supported(file) {
		return fmt.Errorf("unsupported statement file %q: only csv, xls, and xlsx are accepted", file)
	}

	w, err := openWorkspace(dir)
	if err != nil {
		return err
	}
	defer w.Close()

	if source == "" {
		source = w.cfg.DefaultSource
	}

	p, err := parser.DefaultRegistry().Resolve(source)
	if err != nil {
		return err
	}

	tables, err := decode.File(file)
	if err != nil {
		return err
	}

	parsed, err := p.Parse(tabular.StripNoise(tables))
	if err != nil {
		return err
	}
	w.log.Info().Str("source", source).Str("file", file).
		Int("rows", len(parsed)).Msg("parsed statement")

	added := w.data.MergeTransactions(parsed)
	if err := w.data.SaveHistory(); err != nil {
		return err
	}
	w.audit("import", filepath.Base(file), len(added))

	color.New(color.FgGreen).Printf("Imported %d new transactions (%d duplicates skipped), history now %d.\n",
		len(added), len(parsed)-len(added), len(w.data.Transactions()))

	// Flag what the categorize flow should look at next.
	if n := len(w.data.Uncategorized()); n > 0 {
		color.New(color.FgYellow).Printf("%d transactions are uncategorized.\n", n)
	}
	for _, s := range importSuggestions(w.data, added) {
		cat := s.Cat
		color.New(color.FgCyan).Printf("  suggestion: set-category %s %s  (%s)\n",
			s.Txn.ID, formatCategory(&cat), s.Txn.Description)
	}
	return nil
}

// importSuggestion pairs a newly merged uncategorized transaction with the
// category remembered for its description.
type importSuggestion struct {
	Txn model.Transaction
	Cat model.Category
}

func importSuggestions(data *provider.Local, added []model.Transaction) []importSuggestion {
	var out []importSuggestion
	for _, t := range added {
		if !t.Uncategorized() {
			continue
		}
		if cat, ok := data.AutoCategorize(t.Description); ok {
			out = append(out, importSuggestion{Txn: t, Cat: cat})
		}
	}
	return out
}
