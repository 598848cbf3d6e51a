package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"coursework/internal/journal"
)

type historyOptions struct {
	limit int
	json  bool
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	opts := &historyOptions{}
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the session journal",
	}
	historyCmd.PersistentFlags().IntVarP(&opts.limit, "limit", "n", 20, "Maximum number of rows to show")
	historyCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Output as JSON")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "sessions",
		Short: "List recent sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(cmd, func(runCtx context.Context, store *journal.Store) error {
				sessions, err := store.Sessions(runCtx, opts.limit)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd, nonNil(sessions))
				}
				rows := make([][]string, 0, len(sessions))
				for _, s := range sessions {
					rows = append(rows, []string{s.ID, s.Command, s.Language, formatTime(s.StartedAt)})
				}
				return printRows(cmd, "No sessions recorded",
					[]string{"ID", "Command", "Language", "Started"}, rows, nil)
			})
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "notifications",
		Short: "List recently stored notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(cmd, func(runCtx context.Context, store *journal.Store) error {
				notes, err := store.Notifications(runCtx, opts.limit)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd, nonNil(notes))
				}
				rows := make([][]string, 0, len(notes))
				for _, n := range notes {
					rows = append(rows, []string{
						shortID(n.SessionID),
						strconv.Itoa(n.Position),
						n.Message,
						formatTime(n.CreatedAt),
					})
				}
				return printRows(cmd, "No notifications recorded",
					[]string{"Session", "#", "Message", "Stored"}, rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft})
			})
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "courses",
		Short: "List recently presented courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(cmd, func(runCtx context.Context, store *journal.Store) error {
				records, err := store.Courses(runCtx, opts.limit)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd, nonNil(records))
				}
				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					rows = append(rows, []string{
						rec.Summary.Title,
						rec.Summary.Kind.DisplayName(),
						strconv.Itoa(rec.Summary.Semesters),
						strconv.Itoa(rec.Summary.WorkloadHours),
						rec.Summary.UnitLine(),
					})
				}
				return printRows(cmd, "No courses recorded",
					[]string{"Title", "Kind", "Semesters", "Hours", "Units"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft})
			})
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "rejections",
		Short: "List recently rejected course lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(cmd, func(runCtx context.Context, store *journal.Store) error {
				rejections, err := store.Rejections(runCtx, opts.limit)
				if err != nil {
					return err
				}
				if opts.json {
					return writeJSON(cmd, nonNil(rejections))
				}
				rows := make([][]string, 0, len(rejections))
				for _, r := range rejections {
					rows = append(rows, []string{shortID(r.SessionID), r.Reason, r.Line})
				}
				return printRows(cmd, "No rejections recorded",
					[]string{"Session", "Reason", "Line"}, rows, nil)
			})
		},
	})

	return historyCmd
}

func (c *commandContext) withJournal(cmd *cobra.Command, fn func(context.Context, *journal.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}
	store, err := journal.Open(runCtx, cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer store.Close()
	return fn(runCtx, store)
}

func printRows(cmd *cobra.Command, empty string, headers []string, rows [][]string, aligns []columnAlignment) error {
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, empty)
		return err
	}
	_, err := fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
	return err
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
