package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vk/contactbook/internal/ctxlog"
)

const farewell = "Good bye!"

// Run reads commands from in until close/exit, end of input or ctx is
// cancelled. Errors from individual commands are shown to the user and never
// end the loop; only I/O failures are returned.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "window_days", a.config.WindowDays)

	if _, err := fmt.Fprintln(a.outW, a.config.Greeting); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			a.logger.Info("Run cancelled.", "error", err)
			return nil
		}

		if _, err := fmt.Fprint(a.outW, a.config.Prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			a.logger.Debug("End of input reached.")
			_, err := fmt.Fprintln(a.outW, "\n"+farewell)
			return err
		}

		reply, quit := a.dispatcher.Dispatch(ctx, scanner.Text())
		if reply != "" {
			if _, err := fmt.Fprintln(a.outW, reply); err != nil {
				return fmt.Errorf("failed to write reply: %w", err)
			}
		}
		if quit {
			a.logger.Debug("App.Run method finished.", "contacts", a.book.Len())
			return nil
		}
	}
}
