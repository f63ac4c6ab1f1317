package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegisterAndExecute(t *testing.T) {
	commands := NewCommands()
	var calls []string

	require.NoError(t, commands.Register("a", func() { calls = append(calls, "a") }))
	require.NoError(t, commands.Register("b", func() { calls = append(calls, "b") }))

	require.NoError(t, commands.Execute("b"))
	require.NoError(t, commands.Execute("a"))

	assert.Equal(t, []string{"b", "a"}, calls)
	assert.Equal(t, []string{"a", "b"}, commands.IDs())
}

func TestCommandsErrors(t *testing.T) {
	commands := NewCommands()
	require.NoError(t, commands.Register("a", func() {}))

	assert.ErrorIs(t, commands.Register("a", func() {}), ErrDuplicateCommand)
	assert.ErrorIs(t, commands.Execute("missing"), ErrUnknownCommand)
	assert.Error(t, commands.Register("", func() {}))
	assert.Error(t, commands.Register("b", nil))
}

func TestCommandsUnregister(t *testing.T) {
	commands := NewCommands()
	require.NoError(t, commands.Register("a", func() {}))
	require.NoError(t, commands.Register("b", func() {}))

	commands.Unregister("a")
	commands.Unregister("missing")

	assert.Equal(t, []string{"b"}, commands.IDs())
	assert.ErrorIs(t, commands.Execute("a"), ErrUnknownCommand)
	require.NoError(t, commands.Register("a", func() {}))
	assert.Equal(t, []string{"b", "a"}, commands.IDs())
}
