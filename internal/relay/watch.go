package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/impact/internal/effect"
)

// reconnectDelay is the pause between dial attempts after a lost connection.
const reconnectDelay = 2 * time.Second

// Watch connects to a relay websocket and sends every received record to
// out until ctx is cancelled, reconnecting when the connection drops.
// out is closed when Watch returns.
func Watch(ctx context.Context, url string, out chan<- effect.Record, logger *log.Logger) error {
	defer close(out)
	if logger == nil {
		logger = log.Default()
	}

	for {
		err := watchOnce(ctx, url, out, logger)
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("Relay connection lost", "url", url, "err", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func watchOnce(ctx context.Context, url string, out chan<- effect.Record, logger *log.Logger) error {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage on cancellation.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	logger.Info("Watching relay", "url", url)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		rec, err := effect.Decode(data)
		if err != nil {
			logger.Warn("Discarding malformed record", "err", err)
			continue
		}
		select {
		case out <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
