package command

import (
	"context"
	"slices"

	"github.com/vk/contactbook/internal/addressbook"
)

// Session is the state a handler works on.
type Session struct {
	Book       *addressbook.Book
	WindowDays int
}

// Handler runs one command. A non-nil error is rendered with Render.
type Handler func(ctx context.Context, s *Session, args []string) (string, error)

// Command is a registered keyword.
type Command struct {
	Keyword string
	Usage   string
	Summary string
	Run     Handler
	// Quit ends the read loop after the reply is printed.
	Quit bool
}

// Registry maps keywords to commands.
type Registry struct {
	commands map[string]*Command
	order    []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds cmd under its keyword, replacing an earlier registration.
func (r *Registry) Register(cmd *Command) {
	if cmd == nil || cmd.Keyword == "" || cmd.Run == nil {
		panic("command: Register requires a keyword and a handler")
	}
	if _, exists := r.commands[cmd.Keyword]; !exists {
		r.order = append(r.order, cmd.Keyword)
	}
	r.commands[cmd.Keyword] = cmd
}

// Lookup returns the command registered under keyword.
func (r *Registry) Lookup(keyword string) (*Command, bool) {
	cmd, ok := r.commands[keyword]
	return cmd, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.commands[k])
	}
	return out
}

// Keywords returns the registered keywords, sorted.
func (r *Registry) Keywords() []string {
	keys := slices.Clone(r.order)
	slices.Sort(keys)
	return keys
}
