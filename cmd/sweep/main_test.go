package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/store"
)

func TestPlay(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	require.NoError(t, play(ctx, st, strings.NewReader("f 0 0\n\nq\no 9 9\n"), &out, discard))

	printed := out.String()
	assert.Contains(t, printed, "beginner 9x9  mines 10  flags 0")
	assert.Contains(t, printed, "beginner 9x9  mines 10  flags 1")
	assert.Contains(t, printed, "unknown command")
	assert.Contains(t, printed, "out of bounds")
	assert.True(t, strings.HasPrefix(strings.Split(printed, "\n")[1], "# "))

	p := &game.Persister{Store: st, Prefix: player}
	g, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, game.StatusRunning, g.Status())
	assert.Equal(t, 1, g.FlagCount())
}

func TestPlayDifficulty(t *testing.T) {
	difficulty = game.Expert
	t.Cleanup(func() { difficulty = "" })
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	require.NoError(t, play(context.Background(), store.NewMemoryStore(), strings.NewReader(""), &out, discard))
	assert.Contains(t, out.String(), "expert 30x16  mines 99")

	difficulty = "nightmare"
	assert.Error(t, play(context.Background(), store.NewMemoryStore(), strings.NewReader(""), &out, discard))
}
