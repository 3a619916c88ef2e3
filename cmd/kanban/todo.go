package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
)

func (a *cliApp) todoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"todos"},
		Short:   "Manage todos",
	}

	cmd.AddCommand(a.todoAddCmd())
	cmd.AddCommand(a.todoListCmd())
	cmd.AddCommand(a.todoEditCmd())
	cmd.AddCommand(a.todoToggleCmd())
	cmd.AddCommand(a.todoMoveCmd())
	cmd.AddCommand(a.todoRemoveCmd())

	return cmd
}

func (a *cliApp) todoAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add GROUP_ID TEXT...",
		Short: "Add a todo to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := a.resolveGroupID(args[0])
			if err != nil {
				return err
			}

			t, err := a.svc().AddTodo(cmd.Context(), strings.Join(args[1:], " "), groupID)
			if err != nil {
				return err
			}

			return a.emit(cmd, dto.ToTodoResponse(t), func(w io.Writer) {
				fmt.Fprintf(w, "added todo %s: %s\n", shortID(t.ID), t.Text)
			})
		},
	}
}

func (a *cliApp) todoListCmd() *cobra.Command {
	var (
		filter  string
		groupID string
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos (active only unless --filter is set)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filter != "" && !a.svc().SetFilter(todo.Filter(filter)) {
				return domain.NewValidationError("filter", "must be one of: all, active, completed")
			}

			var todos []todo.Todo
			if groupID != "" {
				id, err := a.resolveGroupID(groupID)
				if err != nil {
					return err
				}
				todos = a.svc().Filter().Apply(a.svc().TodosForGroup(id))
			} else {
				todos = a.svc().FilteredTodos()
			}

			return a.emit(cmd, dto.ToTodoListResponse(todos, a.svc().Filter()), func(w io.Writer) {
				a.writeTodoTable(w, todos)
			})
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "View mode: all, active or completed")
	cmd.Flags().StringVarP(&groupID, "group", "g", "", "Only list todos in this group")

	return cmd
}

func (a *cliApp) writeTodoTable(w io.Writer, todos []todo.Todo) {
	names := make(map[string]string)
	for _, g := range a.svc().SortedGroups() {
		names[g.ID] = g.Name
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tGROUP\tTEXT")
	for i := range todos {
		t := &todos[i]
		done := " "
		if t.Completed {
			done = "x"
		}
		group, ok := names[t.GroupID]
		if !ok {
			group = "?"
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\n", shortID(t.ID), done, group, t.Text)
	}
	_ = tw.Flush()
}

func (a *cliApp) todoEditCmd() *cobra.Command {
	var text, description string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a todo's text and/or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			textSet := cmd.Flags().Changed("text")
			descSet := cmd.Flags().Changed("description")
			if !textSet && !descSet {
				return domain.NewValidationError("flags", "must set --text or --description")
			}

			id, err := a.resolveTodoID(args[0])
			if err != nil {
				return err
			}
			current, ok := a.svc().Todo(id)
			if !ok {
				return notFound("todo", id)
			}
			if !textSet {
				text = current.Text
			}
			if !descSet {
				description = current.Description
			}

			ok, err = a.svc().UpdateTodo(cmd.Context(), id, text, description)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("todo", id)
			}
			return a.printTodo(cmd, id, "updated")
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "New text")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")

	return cmd
}

func (a *cliApp) todoToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a todo between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveTodoID(args[0])
			if err != nil {
				return err
			}

			ok, err := a.svc().ToggleTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("todo", id)
			}
			return a.printTodo(cmd, id, "toggled")
		},
	}
}

func (a *cliApp) todoMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv ID GROUP_ID",
		Short: "Move a todo to another group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveTodoID(args[0])
			if err != nil {
				return err
			}
			groupID, err := a.resolveGroupID(args[1])
			if err != nil {
				return err
			}

			ok, err := a.svc().MoveTodo(cmd.Context(), id, groupID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("todo", id)
			}
			return a.printTodo(cmd, id, "moved")
		},
	}
}

func (a *cliApp) todoRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a todo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveTodoID(args[0])
			if err != nil {
				return err
			}

			ok, err := a.svc().RemoveTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("todo", id)
			}

			return a.emit(cmd, map[string]string{"id": id}, func(w io.Writer) {
				fmt.Fprintf(w, "removed todo %s\n", shortID(id))
			})
		},
	}
}

func (a *cliApp) printTodo(cmd *cobra.Command, id, verb string) error {
	t, ok := a.svc().Todo(id)
	if !ok {
		return notFound("todo", id)
	}
	return a.emit(cmd, dto.ToTodoResponse(t), func(w io.Writer) {
		state := "active"
		if t.Completed {
			state = "completed"
		}
		fmt.Fprintf(w, "%s todo %s (%s): %s\n", verb, shortID(t.ID), state, t.Text)
	})
}
