package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	debug := flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	seed := flag.Uint64("seed", 0, "apple placement seed, 0 = time based")
	interval := flag.Duration("interval", 0, "snake move interval, overrides config")
	printConfig := flag.Bool("print-config", false, "print the effective config as YAML and exit")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *interval != 0 {
		cfg.Timing.MoveInterval = *interval
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *printConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.RegisterReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(screen, cfg, sound)
	if err := g.run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
