package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neoncity/internal/config"
	"neoncity/internal/game"
	"neoncity/internal/transport/observer"
	"neoncity/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config overlaid on the defaults")
		seed       = flag.Int64("seed", 0, "layout seed (0 picks one from the clock)")
		headless   = flag.Bool("headless", false, "run without a window")
		frames     = flag.Int("frames", 600, "frames to simulate when headless (0 runs until interrupted)")
		fps        = flag.Float64("fps", 60, "fixed frame rate when headless")
		observe    = flag.String("observe", "", "observer listen address, e.g. 127.0.0.1:8080 (empty to disable)")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[neoncity] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *fps <= 0 {
		logger.Fatalf("fps must be > 0, got %v", *fps)
	}

	w, err := world.New(cfg, logger)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	var pub game.Publisher
	if *observe != "" {
		hub := observer.NewHub()
		pub = hub
		srv := observer.NewServer(hub, w.City.Layout(), logger)
		go func() {
			if err := srv.Serve(ctx, *observe); err != nil {
				logger.Printf("observer: %v", err)
			}
		}()
		defer func() {
			logger.Printf("observer: %d frames published, %d dropped", hub.Published(), hub.Dropped())
		}()
	}

	if *headless {
		game.RunHeadless(ctx, w, *frames, 1 / *fps, *observe != "", pub, logger)
		return
	}

	g := game.New(w, logger)
	g.Publisher = pub
	g.Run(int32(*width), int32(*height), "Neon City")
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
