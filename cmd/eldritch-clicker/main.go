package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/eldritch-clicker/audio"
	"github.com/lixenwraith/eldritch-clicker/config"
	"github.com/lixenwraith/eldritch-clicker/engine"
	"github.com/lixenwraith/eldritch-clicker/persist"
	"github.com/lixenwraith/eldritch-clicker/render"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Terminal cleanup on every exit path; on panic the terminal is restored before the stack trace is printed
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mELDRITCH-CLICKER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	store := persist.NewManager(cfg.SavePath)
	state, err := store.Load()
	switch {
	case err == nil:
		log.Printf("main: loaded save %s from %s", state.SaveID, store.Path())
	case errors.Is(err, persist.ErrCorruptSave):
		log.Printf("main: corrupt save at %s, starting fresh as %s: %v", store.Path(), state.SaveID, err)
	default:
		log.Printf("main: cannot read %s, starting fresh as %s: %v", store.Path(), state.SaveID, err)
	}

	sounds, err := audio.Open(cfg.Sound, cfg.Volume)
	if err != nil {
		log.Printf("main: audio unavailable, continuing silent: %v", err)
	}
	defer sounds.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// PollEvent returns nil once the screen is finalized
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g := engine.NewGame(state, engine.Timing{
		TickInterval:     cfg.TickInterval,
		AutosaveInterval: cfg.AutosaveInterval,
		NoticeDuration:   cfg.NoticeDuration,
	}, engine.Deps{
		Drawer: render.NewTerminalRenderer(screen),
		Store:  store,
		Sounds: sounds,
	})

	// Final save failure is logged by the loop and does not change the exit code
	_ = g.Run(ctx, events)
	log.Printf("main: quit with %s lifetime followers", render.FormatCount(g.State().Lifetime))
	return 0
}
