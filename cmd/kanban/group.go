package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

func (a *cliApp) groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage board columns",
	}

	cmd.AddCommand(a.groupAddCmd())
	cmd.AddCommand(a.groupListCmd())
	cmd.AddCommand(a.groupRenameCmd())
	cmd.AddCommand(a.groupMoveCmd())
	cmd.AddCommand(a.groupRemoveCmd())

	return cmd
}

func (a *cliApp) groupAddCmd() *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a group, appended after the last one unless --position is set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pos *int
			if cmd.Flags().Changed("position") {
				pos = &position
			}

			g, err := a.svc().AddGroup(cmd.Context(), args[0], pos)
			if err != nil {
				return err
			}

			return a.emit(cmd, dto.ToGroupResponse(g), func(w io.Writer) {
				fmt.Fprintf(w, "added group %s %q at position %d\n", shortID(g.ID), g.Name, g.Position)
			})
		},
	}

	cmd.Flags().IntVarP(&position, "position", "p", 0, "Position on the board")

	return cmd
}

func (a *cliApp) groupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List groups in board order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups := a.svc().SortedGroups()

			return a.emit(cmd, dto.ToGroupListResponse(groups), func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "POS\tID\tNAME\tTODOS")
				for i := range groups {
					g := &groups[i]
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", g.Position, shortID(g.ID), g.Name, len(a.svc().TodosForGroup(g.ID)))
				}
				_ = tw.Flush()
			})
		},
	}
}

func (a *cliApp) groupRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveGroupID(args[0])
			if err != nil {
				return err
			}

			ok, err := a.svc().RenameGroup(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("group", id)
			}
			return a.printGroup(cmd, id, "renamed")
		},
	}
}

func (a *cliApp) groupMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move ID POSITION",
		Short: "Change a group's position on the board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveGroupID(args[0])
			if err != nil {
				return err
			}
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return domain.NewValidationError("position", "must be an integer")
			}

			ok, err := a.svc().RepositionGroup(cmd.Context(), id, position)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("group", id)
			}
			return a.printGroup(cmd, id, "moved")
		},
	}
}

func (a *cliApp) groupRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a group and every todo in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveGroupID(args[0])
			if err != nil {
				return err
			}
			dropped := len(a.svc().TodosForGroup(id))

			ok, err := a.svc().RemoveGroup(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("group", id)
			}

			return a.emit(cmd, map[string]any{"id": id, "removedTodos": dropped}, func(w io.Writer) {
				fmt.Fprintf(w, "removed group %s and %d todos\n", shortID(id), dropped)
			})
		},
	}
}

func (a *cliApp) printGroup(cmd *cobra.Command, id, verb string) error {
	g, ok := a.svc().Group(id)
	if !ok {
		return notFound("group", id)
	}
	return a.emit(cmd, dto.ToGroupResponse(g), func(w io.Writer) {
		fmt.Fprintf(w, "%s group %s: %q at position %d\n", verb, shortID(g.ID), g.Name, g.Position)
	})
}
