package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/scheduler"
	"github.com/lixenwraith/vi-snake/terminal"
	"github.com/lixenwraith/vi-snake/window"
)

func main() {
	// Panic Recovery: restore the display before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// frontend is the display and input pair of one backend
type frontend struct {
	display core.Display
	input   core.Input
	close   func()
}

func run(args []string) error {
	cfg, err := config.Load("vi-snake", args)
	if err != nil {
		return err
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("vi-snake: display=%s audio=%s panel=%dx%d seed=%d tick=%v barrier=%s locale=%s",
		cfg.Display, cfg.Audio, cfg.Width, cfg.Height, seed, cfg.TickDelay, cfg.BarrierPlacement, cfg.Locale)

	fe, err := openFrontend(cfg)
	if err != nil {
		return err
	}
	core.SetCrashFinalizer(fe.close)
	defer fe.close()

	sink, err := audio.Open(cfg.AudioBackend(), cfg.Volume)
	if err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop, err := scheduler.New(fe.display, fe.input, sink, engine.NewTimeProvider(), scheduler.Config{
		TickDelayMs: cfg.TickDelayMs(),
		Spawner: engine.SpawnerConfig{
			Seed:        seed,
			MaxAttempts: cfg.MaxSpawnAttempts,
			Placement:   cfg.Placement(),
		},
		Locale: cfg.Language(),
	})
	if err != nil {
		return err
	}

	err = loop.Run(ctx)
	log.Printf("vi-snake: exit %s", loop.Status().Summary())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openFrontend(cfg *config.Config) (*frontend, error) {
	switch cfg.Display {
	case config.DisplayWindow:
		w, err := window.Open("vi-snake", cfg.Width, cfg.Height, cfg.WindowScale)
		if err != nil {
			return nil, err
		}
		w.Bind()
		return &frontend{display: w.Display, input: w.Gamepad, close: sync.OnceFunc(w.Close)}, nil
	default:
		term, err := terminal.New(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		term.Start()
		return &frontend{display: term.Display, input: term.Joystick, close: term.Fini}, nil
	}
}
