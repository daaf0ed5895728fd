package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/vk/contactbook/internal/addressbook"
	"github.com/vk/contactbook/internal/command"
)

// App encapsulates the assistant's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	book       *addressbook.Book
	dispatcher *command.Dispatcher
}

// Option customizes an App.
type Option func(*options)

type options struct {
	logW     io.Writer
	now      func() time.Time
	registry *command.Registry
}

// WithLogWriter sends log records to w instead of os.Stderr.
func WithLogWriter(w io.Writer) Option {
	return func(o *options) { o.logW = w }
}

// WithClock sets the source of "today" for the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRegistry replaces the built-in command set.
func WithRegistry(r *command.Registry) Option {
	return func(o *options) { o.registry = r }
}

// NewApp is the constructor for the assistant. Replies are written to outW;
// logs go to stderr unless WithLogWriter says otherwise.
func NewApp(outW io.Writer, cfg *Config, opts ...Option) *App {
	o := options{logW: os.Stderr, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, o.logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	book := addressbook.New(addressbook.WithClock(o.now))
	session := &command.Session{Book: book, WindowDays: cfg.WindowDays}

	return &App{
		outW:       outW,
		logger:     logger,
		config:     cfg,
		book:       book,
		dispatcher: command.NewDispatcher(o.registry, session),
	}
}

// Book returns the application's address book. This is primarily for testing.
func (a *App) Book() *addressbook.Book {
	return a.book
}
