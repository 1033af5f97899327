package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tomz197/impact/internal/config"
	"github.com/tomz197/impact/internal/relay"
)

const (
	defaultHost     = "0.0.0.0"
	defaultPort     = "8080"
	defaultDataFile = "simulation_data.json"
)

//go:embed index.html
var htmlPage string

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	dataFile := config.GetEnv("SIMULATION_DATA_FILE", defaultDataFile)
	logger := config.NewLogger(os.Stderr, "web")

	hub := relay.NewHub(dataFile, logger)
	if err := hub.Restore(); err != nil {
		logger.Warn("Ignoring stored record", "file", dataFile, "err", err)
	}

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	hub.Routes(mux)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logger.Info("Starting web server", "url", "http://"+addr, "dataFile", dataFile)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "err", err)
	}
}
