package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	g := resumed(t, newClock())

	require.NoError(t, g.Execute(ctx, "g"))
	require.NoError(t, g.Execute(ctx, "f 0 0"))
	assert.Equal(t, 1, g.FlagCount())

	require.NoError(t, g.Execute(ctx, "o 1 1"))
	require.NoError(t, g.Execute(ctx, "  c   1 1 "))
	assert.Equal(t, StatusWin, g.Status())

	require.NoError(t, g.Execute(ctx, "r"))
	assert.Equal(t, StatusIdle, g.Status())
}

func TestExecuteInvalid(t *testing.T) {
	ctx := context.Background()
	g := resumed(t, newClock())

	tests := []struct {
		command string
		err     error
	}{
		{"", ErrUnknownCommand},
		{"x 1 1", ErrUnknownCommand},
		{"o 1", ErrInvalidArguments},
		{"g 1", ErrInvalidArguments},
		{"o a 1", ErrInvalidArguments},
		{"f 1 b", ErrInvalidArguments},
	}
	for _, test := range tests {
		t.Run(test.command, func(t *testing.T) {
			assert.ErrorIs(t, g.Execute(ctx, test.command), test.err)
		})
	}
	assert.Equal(t, StatusRunning, g.Status())
}

func TestExecuteAll(t *testing.T) {
	ctx := context.Background()
	g := resumed(t, newClock())

	require.NoError(t, g.ExecuteAll(ctx, "f 1 0\n\no 0 0\no 2 2\n"))
	assert.Equal(t, StatusLose, g.Status())

	g = resumed(t, newClock())
	assert.ErrorIs(t, g.ExecuteAll(ctx, "o 1 1\nq\no 2 2"), ErrUnknownCommand)
	assert.Equal(t, StatusRunning, g.Status())
}
