// Package game runs a single minesweeper game on top of the rules in
// package mines: it owns the status lifecycle, the clock and the current
// difficulty.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/looplab/fsm"
	"github.com/samber/lo"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusLose    Status = "lose"
	StatusWin     Status = "win"
)

const (
	eventStart   = "start"
	eventResume  = "resume"
	eventLose    = "lose"
	eventWin     = "win"
	eventRestart = "restart"
)

var (
	ErrGameOver           = errors.New("game is over, restart to play again")
	ErrDifficultyMismatch = errors.New("grids do not match the difficulty")
)

type Game struct {
	fsm        *fsm.FSM
	difficulty Difficulty
	grids      *mines.GameGrids
	exploded   []mines.Coordinates

	// elapsed accumulates running time up to startedAt.
	elapsed   time.Duration
	startedAt time.Time

	rand   *rand.Rand
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Game)

// WithRand makes mine placement draw from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rand = r }
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// New returns an idle game.
func New(d Difficulty, opts ...Option) *Game {
	g := &Game{
		difficulty: d,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}

	all := []string{string(StatusIdle), string(StatusRunning), string(StatusLose), string(StatusWin)}
	g.fsm = fsm.NewFSM(
		string(StatusIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StatusIdle)}, Dst: string(StatusRunning)},
			{Name: eventResume, Src: []string{string(StatusIdle)}, Dst: string(StatusRunning)},
			{Name: eventLose, Src: []string{string(StatusRunning)}, Dst: string(StatusLose)},
			{Name: eventWin, Src: []string{string(StatusRunning)}, Dst: string(StatusWin)},
			{Name: eventRestart, Src: all, Dst: string(StatusIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				g.logger.Debug("game status changed",
					slog.String("event", e.Event),
					slog.String("from", e.Src),
					slog.String("to", e.Dst),
				)
			},
			"enter_" + string(StatusIdle): func(_ context.Context, _ *fsm.Event) {
				g.reset()
			},
			"enter_" + string(StatusRunning): func(_ context.Context, _ *fsm.Event) {
				g.startedAt = g.now()
			},
			"leave_" + string(StatusRunning): func(_ context.Context, _ *fsm.Event) {
				g.elapsed += g.now().Sub(g.startedAt)
			},
		},
	)

	g.reset()
	return g
}

// Resume returns a running game continuing from grids, with elapsed time
// already on the clock. The grids must have the dimensions of d.
func Resume(
	ctx context.Context, d Difficulty, grids *mines.GameGrids, elapsed time.Duration, opts ...Option,
) (*Game, error) {
	if err := mines.Validate(grids); err != nil {
		return nil, err
	}
	if dims := grids.Dimensions(); dims != d.Dimensions() {
		return nil, fmt.Errorf("%w: %s grids for %s %s", ErrDifficultyMismatch, dims, d.Name, d.Dimensions())
	}
	g := New(d, opts...)
	g.grids = grids.Clone()
	g.elapsed = elapsed
	if err := g.fsm.Event(ctx, eventResume); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() {
	g.grids = mines.NewIdleGrids(g.difficulty.Dimensions())
	g.exploded = nil
	g.elapsed = 0
}

func (g *Game) Status() Status {
	return Status(g.fsm.Current())
}

func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Grids returns a copy of the current grids.
func (g *Game) Grids() *mines.GameGrids {
	return g.grids.Clone()
}

// TotalMines is the number of mines on the field, or the number that will be
// placed once an idle game starts.
func (g *Game) TotalMines() int {
	if g.Status() == StatusIdle {
		return g.difficulty.MineCount
	}
	return g.grids.Mine.Count()
}

func (g *Game) FlagCount() int {
	return lo.SumBy(lo.Flatten(g.grids.Flag), func(v uint8) int { return int(v) })
}

func (g *Game) coveredCount() int {
	return lo.SumBy(lo.Flatten(g.grids.Cover), func(v uint8) int { return int(v) })
}

// Elapsed reports the running time. The clock stops once the game is over.
func (g *Game) Elapsed() time.Duration {
	if g.Status() == StatusRunning {
		return g.elapsed + g.now().Sub(g.startedAt)
	}
	return g.elapsed
}

func (g *Game) ElapsedSeconds() int {
	return int(g.Elapsed() / time.Second)
}

// View projects the grids for the player. Mines are shown once the game is
// over and the ones that ended it are marked as exploded.
func (g *Game) View() mines.Grid {
	over := g.Status() == StatusLose || g.Status() == StatusWin
	view := mines.View(g.grids, over)
	width := g.grids.Dimensions().Width
	for _, c := range g.exploded {
		view[c.Y*width+c.X] = mines.ExplodedMine
	}
	return view
}

// Click applies a left or right click. The first click of an idle game lays
// the mines around it. Clicks that change nothing are not errors.
func (g *Game) Click(ctx context.Context, c mines.Coordinates, isRightClick bool) error {
	switch g.Status() {
	case StatusLose, StatusWin:
		return ErrGameOver
	case StatusIdle:
		grids, err := mines.CreateGameGrids(
			g.difficulty.Dimensions(), g.difficulty.MineCount, c, mines.DefaultSparePerimeter, g.rand,
		)
		if err != nil {
			return fmt.Errorf("unable to start game: %w", err)
		}
		g.grids = grids
		if err := g.fsm.Event(ctx, eventStart); err != nil {
			return err
		}
	}

	next, err := mines.HandleClick(g.grids, c, isRightClick, false)
	switch {
	case errors.Is(err, mines.ErrFieldIsNotCovered), errors.Is(err, mines.ErrFieldIsFlaggedField):
		g.logger.Debug("click ignored", slog.String("cell", c.String()), slog.Any("reason", err))
		return nil
	case errors.Is(err, mines.ErrFieldIsMineField):
		g.exploded = g.detonatedBy(c)
		return g.fsm.Event(ctx, eventLose)
	case err != nil:
		return err
	}

	g.grids = next
	if g.coveredCount() == g.grids.Mine.Count() {
		return g.fsm.Event(ctx, eventWin)
	}
	return nil
}

// detonatedBy lists the mines a losing click at c set off: c itself, or the
// unflagged mines around a chorded number.
func (g *Game) detonatedBy(c mines.Coordinates) []mines.Coordinates {
	if g.grids.Mine[c.Y][c.X] == 1 {
		return []mines.Coordinates{c}
	}
	return lo.Filter(g.grids.Dimensions().Neighbours(c), func(n mines.Coordinates, _ int) bool {
		return g.grids.Mine[n.Y][n.X] == 1 && g.grids.Flag[n.Y][n.X] == 0
	})
}

// Restart abandons the current game and returns to an empty idle field.
func (g *Game) Restart(ctx context.Context) error {
	err := g.fsm.Event(ctx, eventRestart)
	var nte fsm.NoTransitionError
	if errors.As(err, &nte) {
		g.reset()
		return nil
	}
	return err
}

// SetDifficulty switches to d and restarts.
func (g *Game) SetDifficulty(ctx context.Context, d Difficulty) error {
	g.difficulty = d
	return g.Restart(ctx)
}
