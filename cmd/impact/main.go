package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/impact/internal/audio"
	"github.com/tomz197/impact/internal/config"
	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/loop"
	"github.com/tomz197/impact/internal/present/ansi"
	"github.com/tomz197/impact/internal/present/tcellui"
	"github.com/tomz197/impact/internal/relay"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

type options struct {
	dataFile string
	backend  string
	watchURL string
	sound    bool
	seed     uint64
	idle     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dataFile, "data-file", config.GetEnv("SIMULATION_DATA_FILE", ""), "effect record JSON file (built-in example when empty)")
	flag.StringVar(&opts.backend, "backend", config.GetEnv("IMPACT_BACKEND", "ansi"), "terminal backend: ansi or tcell")
	flag.StringVar(&opts.watchURL, "watch", "", "relay websocket to load records from, e.g. ws://localhost:8080/ws")
	flag.BoolVar(&opts.sound, "sound", config.GetEnvBool("IMPACT_SOUND", false), "play a rumble on impact")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	flag.BoolVar(&opts.idle, "idle", false, "wait for data instead of starting with the data file")
	flag.Parse()

	startup := config.NewLogger(os.Stderr, "impact")

	logOut, closeLog, err := config.OpenRuntimeLog()
	if err != nil {
		startup.Warn("Cannot open log file, runtime logging disabled", "err", err)
	}
	logger := config.NewLogger(logOut, "impact")

	err = run(opts, startup, logger)
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "impact: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, startup, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.seed == 0 {
		opts.seed = rand.Uint64()
	}
	sessOpts := sim.Options{
		Scale: config.Scale(effect.DefaultScale),
		Rand:  rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15)),
	}

	if opts.sound {
		rumble := audio.NewRumble()
		if err := rumble.Init(); err != nil {
			startup.Warn("Audio unavailable, continuing without sound", "err", err)
		} else {
			defer rumble.Close()
			sessOpts.OnDetonate = rumble.Play
		}
	}

	s := sim.NewSession(sessOpts)
	if !opts.idle {
		rec, err := effect.LoadFileOr(opts.dataFile, effect.Example())
		if err != nil {
			startup.Warn("Using example impact data", "file", opts.dataFile, "err", err)
		}
		s.Load(rec)
		s.Start()
	}

	var loads chan effect.Record
	if opts.watchURL != "" {
		loads = make(chan effect.Record, 4)
		go func() {
			if err := relay.Watch(ctx, opts.watchURL, loads, logger); err != nil {
				logger.Error("Relay watch stopped", "err", err)
			}
		}()
	}

	composer := render.NewComposer(opts.seed)
	loopOpts := loop.Options{Loads: loads, Logger: logger}

	switch opts.backend {
	case "ansi":
		return runANSI(ctx, s, composer, loopOpts)
	case "tcell":
		return runTcell(ctx, s, composer, loopOpts)
	default:
		return fmt.Errorf("unknown backend %q (want ansi or tcell)", opts.backend)
	}
}

func runANSI(ctx context.Context, s *sim.Session, composer *render.Composer, opts loop.Options) error {
	profile := termenv.EnvColorProfile()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	t := ansi.NewTerminal(os.Stdout, ansi.Options{Profile: profile, Composer: composer})
	t.Start()
	defer t.Stop()

	src := input.StartStream(bufio.NewReader(os.Stdin))
	return loop.Run(ctx, s, src, t, opts)
}

func runTcell(ctx context.Context, s *sim.Session, composer *render.Composer, opts loop.Options) error {
	ui, err := tcellui.NewDefault(composer)
	if err != nil {
		return err
	}
	defer ui.Close()
	return loop.Run(ctx, s, ui, ui, opts)
}
