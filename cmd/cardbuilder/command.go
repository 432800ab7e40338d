package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/CardBuilder_Go/internal/bootstrap"
	"github.com/osse101/CardBuilder_Go/internal/config"
)

// errUsage marks errors caused by malformed command lines
var errUsage = errors.New("usage")

func usageError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

// App is what every command runs against
type App struct {
	Config *config.Config
	Repos  *bootstrap.Repositories
	Out    io.Writer
}

// Command interface that all cardbuilder commands must implement
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, app *App, args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// DefaultRegistry holds every cardbuilder command
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GamesCommand{})
	r.Register(&StatsCommand{})
	r.Register(&CardsCommand{})
	r.Register(&PickCommand{})
	r.Register(&AboutCommand{})
	r.Register(&MetricsCommand{})
	return r
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered commands
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [args...]\n", appName)
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Fprintf(w, "  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

// Dispatch runs the command named by args[0]
func (r *Registry) Dispatch(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		r.PrintHelp(app.Out)
		return usageError("%s", ErrMsgMissingArgument)
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		r.PrintHelp(app.Out)
		return usageError("%s: %s", ErrMsgUnknownCommand, args[0])
	}
	return cmd.Run(ctx, app, args[1:])
}
