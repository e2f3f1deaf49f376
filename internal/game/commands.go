package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)

const (
	cmdNoop    = "g"
	cmdOpen    = "o"
	cmdFlag    = "f"
	cmdChord   = "c"
	cmdRestart = "r"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	cmdNoop:    0,
	cmdOpen:    2,
	cmdFlag:    2,
	cmdChord:   2,
	cmdRestart: 0,
}

func parseXY(args []string) (c mines.Coordinates, err error) {
	if c.X, err = strconv.Atoi(args[0]); err != nil {
		return c, fmt.Errorf("%w: first argument must be an int", ErrInvalidArguments)
	}
	if c.Y, err = strconv.Atoi(args[1]); err != nil {
		return c, fmt.Errorf("%w: second argument must be an int", ErrInvalidArguments)
	}
	return c, nil
}

// Execute runs one protocol command against the game:
//
//	g        no-op, useful to fetch the state
//	o X Y    open a cell
//	f X Y    toggle a flag
//	c X Y    chord a revealed number
//	r        restart
func (g *Game) Execute(ctx context.Context, command string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty command", ErrUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%w: %q expects %d, got %d", ErrInvalidArguments, parts[0], nargs, len(parts)-1)
	}

	switch parts[0] {
	case cmdNoop:
		return nil
	case cmdRestart:
		return g.Restart(ctx)
	}

	c, err := parseXY(parts[1:])
	if err != nil {
		return err
	}
	return g.Click(ctx, c, parts[0] == cmdFlag)
}

// ExecuteAll runs newline separated commands, stopping at the first error or
// as soon as the game is over.
func (g *Game) ExecuteAll(ctx context.Context, message string) error {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := g.Execute(ctx, line); err != nil {
			return err
		}
		if s := g.Status(); s == StatusLose || s == StatusWin {
			return nil
		}
	}
	return nil
}
