package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
)

const appName = "decision-spinner"

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry resolves subcommands by name or by an unambiguous prefix, so
// `devtool dead` runs dead-letters
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get returns the command called name, or the single command whose name
// starts with it
func (r *Registry) Get(name string) (Command, bool) {
	if cmd, ok := r.commands[name]; ok {
		return cmd, true
	}
	if name == "" {
		return nil, false
	}

	var match Command
	for full, cmd := range r.commands {
		if !strings.HasPrefix(full, name) {
			continue
		}
		if match != nil {
			return nil, false
		}
		match = cmd
	}
	return match, match != nil
}

// List returns the commands sorted by name
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

// WriteHelp prints usage and the command table to w
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: devtool <command> [args...]  (%s)\n\nCommands:\n", appName)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}
