package relay

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/tomz197/impact/internal/effect"
)

// maxBodyBytes bounds a submitted record.
const maxBodyBytes = 1 << 20

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Routes registers the simulation API and the websocket feed on mux.
func (h *Hub) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/simulation/start", h.handleStart)
	mux.HandleFunc("GET /api/simulation/status", h.handleStatus)
	mux.HandleFunc("GET /api/simulation/schema", h.handleSchema)
	mux.HandleFunc("GET /ws", h.ServeWS)
}

func (h *Hub) handleStart(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil || len(doc) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No data provided"})
		return
	}

	rec, err := effect.Decode(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.Publish(rec); err != nil {
		h.logger.Error("Failed to store record", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.logger.Info("Simulation started", "energy_mt", rec.EnergyMegatons, "viewers", h.Viewers())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Simulation data saved successfully",
		"data":    envelope{Effects: rec},
	})
}

func (h *Hub) handleStatus(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.Latest()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"running": false, "data": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"running": true, "data": envelope{Effects: rec}})
}

func (h *Hub) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, effect.Schema())
}

// ServeWS upgrades the request and streams every published record to the
// viewer, starting with the latest one.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			h.logger.Warn("Websocket upgrade failed", "err", err)
		}
		return
	}

	sub := h.subscribe(conn)
	h.logger.Info("Viewer connected", "remote", conn.RemoteAddr())
	go h.writeLoop(sub)

	// Viewers never send data; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Viewer read failed", "err", err)
			}
			break
		}
	}

	h.unsubscribe(sub)
	h.logger.Info("Viewer disconnected", "remote", conn.RemoteAddr())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
