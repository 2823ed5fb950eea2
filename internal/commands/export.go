package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newExportCommand(dir *string) *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the transaction history to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*dir)
			if err != nil {
				return err
			}
			defer w.Close()

			if format == "" {
				format = w.cfg.Export.Format
			}
			if format != "csv" && format != "xlsx" {
				return fmt.Errorf("unknown export format %q: want csv or xlsx", format)
			}

			if out == "" {
				name := fmt.Sprintf("transactions-%s.%s", time.Now().Format("20060102"), format)
				out = filepath.Join(w.dir, w.cfg.Export.Dir, name)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("creating export directory: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if format == "csv" {
				err = w.data.ExportCSV(f)
			} else {
				err = w.data.ExportXLSX(f)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d transactions to %s\n", len(w.data.Transactions()), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "export format: csv or xlsx (defaults to config)")
	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to the workspace export dir)")

	return cmd
}
