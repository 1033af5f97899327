package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/impact/internal/config"
	"github.com/tomz197/impact/internal/draw"
	"github.com/tomz197/impact/internal/effect"
	"github.com/tomz197/impact/internal/input"
	"github.com/tomz197/impact/internal/loop"
	"github.com/tomz197/impact/internal/present/ansi"
	"github.com/tomz197/impact/internal/render"
	"github.com/tomz197/impact/internal/sim"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultIdleSeconds = 600
)

// viewer holds what every SSH session starts from. Each session still
// runs its own private simulation.
type viewer struct {
	ctx         context.Context
	logger      *log.Logger
	dataFile    string
	scale       float64
	idleTimeout time.Duration
}

func main() {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger := config.NewLogger(os.Stderr, "ssh")

	ctx, cancelSessions := context.WithCancel(context.Background())
	v := &viewer{
		ctx:         ctx,
		logger:      logger,
		dataFile:    config.GetEnv("SIMULATION_DATA_FILE", ""),
		scale:       config.Scale(effect.DefaultScale),
		idleTimeout: time.Duration(config.GetEnvFloat("SSH_IDLE_SECONDS", defaultIdleSeconds) * float64(time.Second)),
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"dataFile", v.dataFile, "scale", v.scale, "idle", v.idleTimeout)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			v.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for key presses
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server")
	cancelSessions()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Shutdown error", "err", err)
	}
}

// middleware runs one private simulation for the session.
func (v *viewer) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := v.logger.With("user", sess.User())
		logger.Info("New impact session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		if err := v.run(sess, pty.Term, size, logger); err != nil {
			logger.Error("Session error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

func (v *viewer) run(sess ssh.Session, termName string, size *sizeTracker, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(v.ctx)
	defer cancel()
	go func() {
		select {
		case <-sess.Context().Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := rand.Uint64()
	s := sim.NewSession(sim.Options{
		Scale: v.scale,
		Rand:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	rec, err := effect.LoadFileOr(v.dataFile, effect.Example())
	if err != nil {
		logger.Warn("Using example impact data", "file", v.dataFile, "err", err)
	}
	s.Load(rec)
	s.Start()

	t := ansi.NewTerminal(sess, ansi.Options{
		Size:     size.getSize,
		Profile:  ansi.ProfileFor(sess, termName, sess.Environ()),
		Composer: render.NewComposer(seed),
	})
	t.Start()
	defer t.Stop()

	src := input.WithIdleTimeout(input.StartStream(sess), v.idleTimeout, nil)
	return loop.Run(ctx, s, src, t, loop.Options{Logger: logger})
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
