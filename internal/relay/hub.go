// Package relay stores submitted effect records and fans them out to
// connected viewers over websockets.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tomz197/impact/internal/effect"
)

const (
	sendBuffer   = 8
	writeTimeout = 5 * time.Second
)

// envelope is the wire and file format: {"effects": {...}}.
type envelope struct {
	Effects effect.Record `json:"effects"`
}

// subscriber is one websocket viewer with its own writer goroutine.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.send)
	})
}

// Hub keeps the latest record and the set of connected viewers.
type Hub struct {
	mu       sync.Mutex
	latest   []byte
	record   effect.Record
	hasData  bool
	dataFile string
	subs     map[*subscriber]struct{}
	logger   *log.Logger
}

// NewHub creates a hub persisting records to dataFile. An empty path
// keeps records in memory only.
func NewHub(dataFile string, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		dataFile: dataFile,
		subs:     make(map[*subscriber]struct{}),
		logger:   logger,
	}
}

// Restore loads the last stored record from the data file, if any.
func (h *Hub) Restore() error {
	if h.dataFile == "" {
		return nil
	}
	rec, err := effect.LoadFile(h.dataFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{Effects: rec})
	if err != nil {
		return fmt.Errorf("encode effect record: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record, h.latest, h.hasData = rec, data, true
	return nil
}

// Publish stores rec, writes it to the data file and sends it to every
// viewer. Viewers whose queue is full miss this record.
func (h *Hub) Publish(rec effect.Record) error {
	data, err := json.Marshal(envelope{Effects: rec})
	if err != nil {
		return fmt.Errorf("encode effect record: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.dataFile != "" {
		if err := os.WriteFile(h.dataFile, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", h.dataFile, err)
		}
	}
	h.record, h.latest, h.hasData = rec, data, true
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			h.logger.Warn("Viewer queue full, dropping record", "remote", sub.conn.RemoteAddr())
		}
	}
	return nil
}

// Latest returns the most recent record and whether one exists.
func (h *Hub) Latest() (effect.Record, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.record, h.hasData
}

// Viewers returns the number of connected websocket viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// subscribe registers conn and queues the latest record for it.
func (h *Hub) subscribe(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[sub] = struct{}{}
	if h.hasData {
		sub.send <- h.latest
	}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
	sub.close()
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[*subscriber]struct{})
	h.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
}

// writeLoop sends queued records until the queue is closed or a write fails.
func (h *Hub) writeLoop(sub *subscriber) {
	defer sub.conn.Close()

	for data := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("Viewer write failed", "remote", sub.conn.RemoteAddr(), "err", err)
			return
		}
	}
	sub.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
}
