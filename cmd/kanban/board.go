package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
)

func (a *cliApp) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := a.svc().ClearCompleted(cmd.Context())
			if err != nil {
				return err
			}

			return a.emit(cmd, dto.ClearCompletedResponse{Removed: removed}, func(w io.Writer) {
				fmt.Fprintf(w, "removed %d completed todos\n", removed)
			})
		},
	}
}

func (a *cliApp) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo counts across the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := a.svc().Stats()

			return a.emit(cmd, dto.ToStatsResponse(stats), func(w io.Writer) {
				fmt.Fprintf(w, "total: %d  active: %d  completed: %d\n", stats.Total, stats.Active, stats.Completed)
			})
		},
	}
}
