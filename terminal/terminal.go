package terminal

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Terminal owns the tcell screen together with its display and joystick
type Terminal struct {
	screen   tcell.Screen
	Display  *Display
	Joystick *Joystick

	wg       sync.WaitGroup
	finiOnce sync.Once
}

// New initializes the controlling terminal; the drawable area is capped at maxWidth x maxHeight pixels
func New(maxWidth, maxHeight int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, maxWidth, maxHeight), nil
}

// NewWithScreen wraps an already initialized screen
func NewWithScreen(screen tcell.Screen, maxWidth, maxHeight int) *Terminal {
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		screen:   screen,
		Display:  NewDisplay(screen, maxWidth, maxHeight),
		Joystick: NewJoystick(),
	}
}

// Start begins polling screen events into the joystick
func (t *Terminal) Start() {
	t.wg.Add(1)
	core.Go(func() {
		defer t.wg.Done()
		t.poll()
	})
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			t.Joystick.HandleEvent(ev)
		}
	}
}

// Fini restores the terminal and waits for the poller. Safe to call more than once.
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		t.screen.Fini()
		t.wg.Wait()
		log.Printf("terminal: finalized")
	})
}
