package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
	"github.com/jsamuelsen11/kanban-board/internal/domain/todo"
	"github.com/jsamuelsen11/kanban-board/internal/ports"
)

// shortIDLength is how many ID characters text output shows.
const shortIDLength = 8

type rootOptions struct {
	profile   string
	configDir string
	driver    string
	file      string
	jsonOut   bool
	verbose   bool
}

// overrides maps the storage and logging flags onto config keys. The CLI
// logs at warn unless --verbose is set.
func (o *rootOptions) overrides() map[string]any {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	values := map[string]any{
		"log.level":      level,
		"log.format":     "text",
		"storage.driver": o.driver,
	}
	if o.file != "" {
		values["storage.file.path"] = o.file
		if o.driver == "" {
			values["storage.driver"] = "file"
		}
	}
	return values
}

// session is an open board and the function that releases its store.
type session struct {
	svc   ports.BoardService
	close func() error
}

type opener func(ctx context.Context, opts *rootOptions) (*session, error)

// cliApp holds state shared by all commands of one invocation.
type cliApp struct {
	opts rootOptions
	open opener
	sess *session
}

func newApp(open opener) *cliApp {
	return &cliApp{open: open}
}

// Close releases the store opened for the invocation, if any.
func (a *cliApp) Close() error {
	if a.sess == nil || a.sess.close == nil {
		return nil
	}
	err := a.sess.close()
	a.sess = nil
	return err
}

func (a *cliApp) svc() ports.BoardService {
	return a.sess.svc
}

func (a *cliApp) rootCmd() *cobra.Command {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}

	root := &cobra.Command{
		Use:           "kanban",
		Short:         "Manage a kanban board of groups and todos",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.open(cmd.Context(), &a.opts)
			if err != nil {
				return err
			}
			a.sess = sess
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.opts.profile, "profile", profile, "Config profile (defaults to $APP_PROFILE or local)")
	root.PersistentFlags().StringVar(&a.opts.configDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&a.opts.driver, "driver", "", "Storage driver, overriding the profile")
	root.PersistentFlags().StringVar(&a.opts.file, "file", "", "Board file for the file driver (implies --driver file)")
	root.PersistentFlags().BoolVar(&a.opts.jsonOut, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Log storage activity to stderr")

	root.AddCommand(a.groupCmd())
	root.AddCommand(a.todoCmd())
	root.AddCommand(a.clearCmd())
	root.AddCommand(a.statsCmd())

	return root
}

// emit prints v as JSON when --json is set, otherwise runs text.
func (a *cliApp) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// resolveGroupID accepts a full group ID or a unique prefix of one.
func (a *cliApp) resolveGroupID(arg string) (string, error) {
	if _, ok := a.svc().Group(arg); ok {
		return arg, nil
	}
	groups := a.svc().SortedGroups()
	ids := make([]string, len(groups))
	for i := range groups {
		ids[i] = groups[i].ID
	}
	return matchPrefix("group", arg, ids)
}

// resolveTodoID accepts a full todo ID or a unique prefix of one.
func (a *cliApp) resolveTodoID(arg string) (string, error) {
	if _, ok := a.svc().Todo(arg); ok {
		return arg, nil
	}
	all := a.allTodos()
	ids := make([]string, len(all))
	for i := range all {
		ids[i] = all[i].ID
	}
	return matchPrefix("todo", arg, ids)
}

// allTodos lists every todo regardless of the current view filter.
func (a *cliApp) allTodos() []todo.Todo {
	prev := a.svc().Filter()
	a.svc().SetFilter(todo.FilterAll)
	defer a.svc().SetFilter(prev)
	return a.svc().FilteredTodos()
}

func matchPrefix(entity, prefix string, ids []string) (string, error) {
	var match string
	count := 0
	for _, id := range ids {
		if prefix != "" && strings.HasPrefix(id, prefix) {
			match = id
			count++
		}
	}
	switch count {
	case 0:
		return "", fmt.Errorf("%s %q: %w", entity, prefix, domain.ErrNotFound)
	case 1:
		return match, nil
	default:
		return "", domain.NewValidationError(entity+"Id", fmt.Sprintf("prefix %q matches %d %ss", prefix, count, entity))
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, domain.ErrNotFound)
}
