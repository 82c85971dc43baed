package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/flappy/app"
	"github.com/lixenwraith/flappy/asset"
	"github.com/lixenwraith/flappy/audio"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/engine"
	"github.com/lixenwraith/flappy/input"
)

const (
	logDir      = "logs"
	logFileName = "flappy.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/flappy.log")
	seedFlag   = flag.Int64("seed", 0, "Pipe layout seed, 0 picks one from the clock")
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	flag.Parse()
	os.Exit(realMain())
}

func realMain() int {
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("startup failed: %v", err)
		fmt.Fprintf(os.Stderr, "flappy: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging routes the standard logger to logs/flappy.log when debug is
// set and discards it otherwise. Files above maxLogSize are rotated aside
// Returns the open log file, nil when logging is disabled or unavailable
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("flappy.%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	runID := uuid.New().String()
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", runID[:8]))
	log.Printf("run %s started, pid %d", runID, os.Getpid())
	return f
}

// run performs startup, then blocks in the frame loop until the player quits
func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	log.Printf("config: fps=%d collision=%s seed=%d audio=%t", cfg.FPS, cfg.Collision, cfg.Seed, cfg.Audio.Enabled)

	overrides, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), overrides)

	bird, err := asset.LoadBird(cfg.Bird.SpriteScale)
	if err != nil {
		return fmt.Errorf("load bird sprite: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()
	app.SetCrashScreen(screen)
	screen.HideCursor()
	screen.EnableMouse(tcell.MouseMotionEvents)

	sounds := audio.NewSoundManager(cfg.Audio.MasterVolume)
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	game := engine.NewGame(engine.Options{
		Config:   cfg,
		BirdMask: bird.Mask(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Options{
		Screen: screen,
		Game:   game,
		Bird:   bird,
		Sounds: sounds,
		Keys:   keys,
		FPS:    cfg.FPS,
	})
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("quit, best %d", game.Best())
	return nil
}
