package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/impact/internal/audio"
	"github.com/tomz197/impact/internal/config"
	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/present/window"
	"github.com/tomz197/impact/internal/relay"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

func main() {
	dataFile := flag.String("data-file", config.GetEnv("SIMULATION_DATA_FILE", ""), "effect record JSON file (built-in example when empty)")
	watchURL := flag.String("watch", "", "relay websocket to load records from, e.g. ws://localhost:8080/ws")
	sound := flag.Bool("sound", config.GetEnvBool("IMPACT_SOUND", false), "play a rumble on impact")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	logger := config.NewLogger(os.Stderr, "impact")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	opts := sim.Options{
		Scale: config.Scale(effect.DefaultScale),
		Rand:  rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)),
	}

	if *sound {
		rumble := audio.NewRumble()
		if err := rumble.Init(); err != nil {
			logger.Warn("Audio unavailable, continuing without sound", "err", err)
		} else {
			defer rumble.Close()
			opts.OnDetonate = rumble.Play
		}
	}

	s := sim.NewSession(opts)
	rec, err := effect.LoadFileOr(*dataFile, effect.Example())
	if err != nil {
		logger.Warn("Using example impact data", "file", *dataFile, "err", err)
	}
	s.Load(rec)
	s.Start()

	var loads chan effect.Record
	if *watchURL != "" {
		loads = make(chan effect.Record, 4)
		go func() {
			if err := relay.Watch(ctx, *watchURL, loads, logger); err != nil {
				logger.Error("Relay watch stopped", "err", err)
			}
		}()
	}

	game := window.NewGame(ctx, s, render.NewComposer(*seed), loads, logger)
	if err := window.Run(game); err != nil {
		logger.Error("Window error", "err", err)
		stop()
		os.Exit(1)
	}
	logger.Info("Window closed")
}
