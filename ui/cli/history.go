// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/db"
	"github.com/toeirei/digitcipher/internal/i18n"
)

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage the conversion history",
	}
	cmd.AddCommand(a.historyListCmd(), a.historyClearCmd(), a.historyExportCmd(), a.historyImportCmd())
	return cmd
}

func (a *app) historyListCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded conversions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.requireHistory()
			if err != nil {
				return err
			}
			entries, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_empty"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(entries))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	return cmd
}

func renderHistoryTable(entries []db.HistoryEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(
			i18n.T("history.header.time"),
			i18n.T("history.header.direction"),
			i18n.T("history.header.input"),
			i18n.T("history.header.output"),
		)
	for _, e := range entries {
		dir := e.Direction
		if d, err := core.ParseDirection(e.Direction); err == nil {
			dir = i18n.T(d.MessageID())
		}
		t.Row(e.CreatedAt.Local().Format("2006-01-02 15:04:05"), dir, e.Input, e.Output)
	}
	return t.Render()
}

func (a *app) historyClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded conversion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.requireHistory()
			if err != nil {
				return err
			}
			if !yes {
				entries, err := st.List(cmd.Context(), 0)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), i18n.T("cli.confirm_clear", len(entries)))
				if !confirmed(cmd) {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.clear_aborted"))
					return nil
				}
			}
			n, err := st.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_cleared", n))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// confirmed reads one answer line from stdin.
func confirmed(cmd *cobra.Command) bool {
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func (a *app) historyExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [output-file]",
		Short: "Write the history to a compressed (zstd) JSON file",
		Long: `Dumps the conversion history into a Zstandard-compressed JSON file.

'.zst' is appended to the name when missing. Without a file name,
'digitcipher-history-YYYY-MM-DD.json.zst' is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.requireHistory()
			if err != nil {
				return err
			}
			outputFile := fmt.Sprintf("digitcipher-history-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("create %s: %w", outputFile, err)
			}
			n, err := core.Backup(cmd.Context(), st, f)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_exported", n, outputFile))
			return nil
		},
	}
}

func (a *app) historyImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup-file.zst>",
		Short: "Merge a history export into the history",
		Long: `Adds the entries of a file written by 'history export'. Entries that
are already present are skipped, so importing the same file twice is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.requireHistory()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()
			n, err := core.Restore(cmd.Context(), st, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.history_imported", n, args[0]))
			return nil
		},
	}
}

func (a *app) dbMaintainCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "db-maintain",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) on the history database",
		Long:  `Runs engine-specific maintenance: VACUUM plus an integrity check on SQLite, VACUUM ANALYZE on PostgreSQL, OPTIMIZE TABLE on MySQL.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			err := db.RunMaintenance(ctx, a.cfg.Database.Type, a.cfg.Database.Dsn)
			if err != nil {
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return fmt.Errorf("%s: %w", i18n.T("cli.maintenance_timeout", timeout), err)
				}
				return fmt.Errorf("maintenance failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.maintenance_done"))
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort maintenance after this long (0 means no timeout)")
	return cmd
}
