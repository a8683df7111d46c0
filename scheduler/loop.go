// Package scheduler runs the single polled control loop that owns the game state
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

// Config holds the loop tunables
type Config struct {
	TickDelayMs int // Initial pause between ticks
	Spawner     engine.SpawnerConfig
	Locale      language.Tag
	Status      *status.Registry // Optional; a private registry is created when nil
}

// Loop drives one game from the start screen to game over.
// All state mutation happens on the goroutine calling Step or Run.
type Loop struct {
	state    *engine.GameState
	spawner  *engine.Spawner
	renderer *render.Renderer

	display core.Display
	input   core.Input
	tone    core.Tone
	clock   core.Clock

	statusReg *status.Registry
	statTicks *atomic.Int64
	statDelay *atomic.Int64
	statScore *atomic.Int64
	statLevel *atomic.Int64
	statFood  *atomic.Int64
	statHit   *atomic.Int64
	statFall  *atomic.Int64
	statPhase *status.AtomicString
}

// ErrPanelTooSmall is returned when the display cannot hold a single grid cell
var ErrPanelTooSmall = errors.New("panel smaller than one cell")

// New creates a loop over the given collaborators; the grid spans the display extents
func New(display core.Display, in core.Input, tone core.Tone, clock core.Clock, cfg Config) (*Loop, error) {
	delay := cfg.TickDelayMs
	if delay <= 0 {
		delay = constants.InitialTickDelayMs
	}
	grid := core.NewGrid(display.Width(), display.Height(), constants.CellSize)
	if grid.Cols() < 1 || grid.Rows() < 1 {
		return nil, fmt.Errorf("%w: %dx%d px with %d px cells",
			ErrPanelTooSmall, display.Width(), display.Height(), constants.CellSize)
	}
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	l := &Loop{
		state:     engine.NewGameState(grid, delay),
		spawner:   engine.NewSpawner(cfg.Spawner, clock),
		renderer:  render.NewRenderer(display, cfg.Locale),
		display:   display,
		input:     in,
		tone:      tone,
		clock:     clock,
		statusReg: reg,
		statTicks: reg.Ints.Get(status.KeyTicks),
		statDelay: reg.Ints.Get(status.KeyTickDelayMs),
		statScore: reg.Ints.Get(status.KeyScore),
		statLevel: reg.Ints.Get(status.KeyLevel),
		statFood:  reg.Ints.Get(status.KeyFoodEaten),
		statHit:   reg.Ints.Get(status.KeyHazardsHit),
		statFall:  reg.Ints.Get(status.KeyFallbacks),
		statPhase: reg.Strings.Get(status.KeyPhase),
	}
	l.publish()
	return l, nil
}

// publish copies the observable state into the status registry
func (l *Loop) publish() {
	gs := l.state
	l.statDelay.Store(int64(gs.TickDelayMs))
	l.statScore.Store(int64(gs.Score))
	l.statLevel.Store(int64(gs.Level))
	l.statFall.Store(int64(l.spawner.Fallbacks))
	l.statPhase.Store(gs.Phase.String())
}

// State exposes the owned aggregate; callers must not mutate it while the loop runs
func (l *Loop) State() *engine.GameState {
	return l.state
}

// Ticks returns the number of running ticks executed
func (l *Loop) Ticks() int64 {
	return l.statTicks.Load()
}

// Status returns the registry the loop publishes to
func (l *Loop) Status() *status.Registry {
	return l.statusReg
}

// Start draws the start screen and places the first food
func (l *Loop) Start() {
	l.spawner.SpawnFood(l.state)
	l.renderer.DrawStartScreen()
}

// Step performs one poll of the phase machine and returns how long to pause before the next
func (l *Loop) Step() time.Duration {
	switch l.state.Phase {
	case engine.PhaseIdle:
		return l.stepIdle()
	case engine.PhaseRunning:
		return l.tick()
	default:
		// Game over is terminal; keep presenting so windowed backends stay responsive
		l.display.Show()
		return constants.IdlePollInterval
	}
}

func (l *Loop) stepIdle() time.Duration {
	l.display.Show()
	if !l.input.ReadButton() {
		return constants.IdlePollInterval
	}
	if err := l.state.Transition(engine.PhaseRunning); err != nil {
		log.Printf("scheduler: %v", err)
		return constants.IdlePollInterval
	}
	l.renderer.ClearStartPrompt()
	l.publish()
	log.Printf("scheduler: game started")
	// First tick runs immediately
	return 0
}

// tick runs one running-phase update: erase, move, resolve, progress, draw, steer
func (l *Loop) tick() time.Duration {
	gs := l.state
	l.statTicks.Add(1)
	defer l.publish()

	l.renderer.EraseSnake(&gs.Snake)
	outcome := engine.Advance(gs)

	if outcome.AteFood {
		l.statFood.Add(1)
		l.tone.PlayTone(constants.ToneEatHz, constants.ToneEatMs)
	}
	l.statHit.Add(int64(outcome.HazardsEaten))
	for i := 0; i < outcome.HazardsEaten; i++ {
		l.tone.PlayTone(constants.ToneHazardHz, constants.ToneHazardMs)
	}

	if outcome.Collision != engine.CollisionNone {
		l.gameOver(outcome.Collision)
		return constants.IdlePollInterval
	}

	for _, c := range engine.UpdateProgression(gs, l.spawner) {
		l.renderer.EraseCell(c)
	}

	expired := gs.Food.Pos
	if engine.UpdateFoodTimer(gs, l.clock.Now()) {
		l.renderer.EraseCell(expired)
	}

	l.renderer.DrawFrame(gs)

	gs.Direction = input.Read(l.input, gs.Direction)
	l.display.Show()

	return gs.TickDelay()
}

func (l *Loop) gameOver(c engine.Collision) {
	gs := l.state
	if err := gs.Transition(engine.PhaseGameOver); err != nil {
		log.Printf("scheduler: %v", err)
		return
	}
	log.Printf("scheduler: game over (%s collision) score %d level %d after %d ticks",
		c, gs.Score, gs.Level, l.statTicks.Load())

	l.renderer.DrawGameOver(gs.Score)
	l.tone.PlayTone(constants.ToneGameOverHz, constants.ToneGameOverMs)
	l.display.Show()
}

// Run executes Start and then steps until ctx is cancelled or the input asks to quit.
// Game over does not end Run; the final screen stays up until then.
func (l *Loop) Run(ctx context.Context) error {
	l.Start()

	quit, _ := l.input.(core.QuitSignal)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if quit != nil && quit.QuitRequested() {
			return nil
		}

		l.clock.Sleep(l.Step())
	}
}
