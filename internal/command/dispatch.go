package command

import (
	"context"

	"github.com/vk/contactbook/internal/ctxlog"
)

// Dispatcher routes parsed lines to the registry.
type Dispatcher struct {
	registry *Registry
	session  *Session
}

// NewDispatcher creates a Dispatcher. A nil registry means Default().
func NewDispatcher(registry *Registry, session *Session) *Dispatcher {
	if registry == nil {
		registry = Default()
	}
	return &Dispatcher{registry: registry, session: session}
}

// Dispatch runs line and returns the reply and whether the loop should stop.
// A blank line produces an empty reply.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (string, bool) {
	logger := ctxlog.FromContext(ctx)

	keyword, args := Parse(line)
	if keyword == "" {
		return "", false
	}

	cmd, ok := d.registry.Lookup(keyword)
	if !ok {
		logger.Debug("Unknown command.", "command", keyword)
		return msgInvalidCommand, false
	}

	logger.Debug("Dispatching command.", "command", keyword, "args", len(args))
	reply, err := cmd.Run(ctx, d.session, args)
	if err != nil {
		logger.Warn("Command failed.", "command", keyword, "error", err)
		return Render(err), false
	}
	return reply, cmd.Quit
}
