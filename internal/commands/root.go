// Package commands wires the cobra CLI surface. Commands follow a strict
// load, mutate, save sequence against a single workspace data file;
// nothing here runs concurrently, and two processes sharing a workspace
// must be serialized by the operator.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shavitns/expense-manager/internal/auditlog"
	"github.com/shavitns/expense-manager/internal/buildinfo"
	"github.com/shavitns/expense-manager/internal/config"
	"github.com/shavitns/expense-manager/internal/provider"
	"github.com/shavitns/expense-manager/internal/store"
)

const configFile = "expense-manager.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "expense-manager",
		Short:   "Bank statement ingestion and expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "workspace directory")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newCategoriesCommand(&dir))
	rootCmd.AddCommand(newSetCategoryCommand(&dir))
	rootCmd.AddCommand(newSuggestCommand(&dir))
	rootCmd.AddCommand(newSplitCommand(&dir))
	rootCmd.AddCommand(newListCommand(&dir))
	rootCmd.AddCommand(newDeleteCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))

	return rootCmd
}

// workspace bundles everything a command needs against one directory.
type workspace struct {
	dir  string
	cfg  *config.Config
	st   *store.Store
	data *provider.Local
	log  zerolog.Logger
}

func newLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}

// openWorkspace loads config and all persisted state for a directory.
// Callers must Close it.
func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("loading workspace config (run init first?): %w", err)
	}

	log := newLogger()
	st, err := store.Open(filepath.Join(absDir, cfg.DataFile), log)
	if err != nil {
		return nil, err
	}

	data, err := provider.Open(st)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &workspace{dir: absDir, cfg: cfg, st: st, data: data, log: log}, nil
}

func (w *workspace) Close() error {
	return w.st.Close()
}

// audit appends one entry to the workspace audit log. Failures are logged,
// not fatal; the mutation itself already succeeded.
func (w *workspace) audit(command, details string, count int) {
	if w.cfg.AuditLog == "" {
		return
	}
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Command:   command,
		Details:   details,
		Count:     count,
	}
	if err := auditlog.Append(filepath.Join(w.dir, w.cfg.AuditLog), []auditlog.Entry{entry}); err != nil {
		w.log.Warn().Err(err).Msg("could not append audit log entry")
	}
}
