package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	noop := func(context.Context, *Session, []string) (string, error) { return "first", nil }
	replaced := func(context.Context, *Session, []string) (string, error) { return "second", nil }

	r.Register(&Command{Keyword: "b", Run: noop})
	r.Register(&Command{Keyword: "a", Run: noop})
	r.Register(&Command{Keyword: "b", Run: replaced})

	cmd, ok := r.Lookup("b")
	require.True(t, ok)
	reply, err := cmd.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", reply)

	_, ok = r.Lookup("c")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, r.Keywords())
	require.Len(t, r.Commands(), 2)
	assert.Equal(t, "b", r.Commands()[0].Keyword, "commands keep registration order")
}

func TestRegistry_RegisterRejectsIncompleteCommands(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	assert.Panics(t, func() { r.Register(nil) })
	assert.Panics(t, func() { r.Register(&Command{Keyword: "x"}) })
	assert.Panics(t, func() {
		r.Register(&Command{Run: func(context.Context, *Session, []string) (string, error) { return "", nil }})
	})
}

func TestDefault_RegistersEveryCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"add", "add-birthday", "all", "birthdays", "change", "close", "delete",
		"exit", "hello", "help", "phone", "remove-phone", "show-birthday",
	}, Default().Keywords())

	for _, keyword := range []string{"close", "exit"} {
		cmd, ok := Default().Lookup(keyword)
		require.True(t, ok)
		assert.True(t, cmd.Quit)
	}
}
