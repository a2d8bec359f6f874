// Package registry holds the capability table mapping normalized method names
// to GitLab REST endpoints. Dispatch is an explicit lookup; unknown names are
// rejected with a typed error instead of any reflective invocation.
package registry

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// UnknownCommandError is returned when a method name has no registry entry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Name)
}

// Command describes one remote API operation.
type Command struct {
	Name       string // normalized method name (underscores)
	HTTPMethod string // GET, POST, PUT, DELETE
	Path       string // API path template, ":name" segments bound from positional args
	Paginated  bool   // listing endpoint eligible for --all
}

// arity counts the placeholder segments in the path template.
func (c Command) arity() int {
	n := 0
	for _, seg := range strings.Split(c.Path, "/") {
		if strings.HasPrefix(seg, ":") {
			n++
		}
	}
	return n
}

// BindPath substitutes positional arguments into the path template in order,
// URL-escaping each. The argument count must match the placeholder count.
func (c Command) BindPath(args []string) (string, error) {
	if want := c.arity(); len(args) != want {
		return "", fmt.Errorf("command '%s' takes %d argument(s), got %d", c.Name, want, len(args))
	}
	segs := strings.Split(c.Path, "/")
	next := 0
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = url.PathEscape(args[next])
			next++
		}
	}
	return strings.Join(segs, "/"), nil
}

// Registry maps method names to commands.
type Registry struct {
	commands map[string]Command
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds or replaces a command.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Lookup resolves a normalized method name.
func (r *Registry) Lookup(name string) (Command, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return Command{}, &UnknownCommandError{Name: name}
	}
	return cmd, nil
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
