// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gorillaws "github.com/gorilla/websocket"

	"github.com/tomtom215/filelens/internal/config"
	"github.com/tomtom215/filelens/internal/controller"
	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/models"
	"github.com/tomtom215/filelens/internal/validation"
	"github.com/tomtom215/filelens/internal/view"
	"github.com/tomtom215/filelens/internal/websocket"
)

// maxSubmitBodySize bounds the JSON body of a submission.
const maxSubmitBodySize = 8 * 1024

// Handler serves the web front end on top of one controller and stats loader.
type Handler struct {
	ctrl   *controller.Controller
	stats  *controller.StatsLoader
	hub    *websocket.Hub
	config config.ServerConfig
}

// NewHandler creates a new Handler.
func NewHandler(ctrl *controller.Controller, stats *controller.StatsLoader, hub *websocket.Hub, cfg config.ServerConfig) *Handler {
	return &Handler{
		ctrl:   ctrl,
		stats:  stats,
		hub:    hub,
		config: cfg,
	}
}

// submitRequest is the body of POST /api/v1/submit.
type submitRequest struct {
	Filename string `json:"filename" validate:"max=1024"`
}

// StatsResponse is the body of GET /api/v1/stats. Loaded is false until the
// one startup fetch succeeds; until then the counters are zero.
type StatsResponse struct {
	Loaded bool `json:"loaded"`
	models.Stats
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status           string `json:"status"`
	WebSocketClients int    `json:"websocket_clients"`
	StatsLoaded      bool   `json:"stats_loaded"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthResponse{
		Status:           "ok",
		WebSocketClients: h.hub.GetClientCount(),
		StatsLoaded:      h.stats.Loaded(),
	})
}

// State returns the current UI state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(view.NewStateView(h.ctrl.Snapshot()))
}

// Submit runs one analysis and answers with the state it produced. Blank
// input answers 400 with the validation state; a submission while another
// is outstanding answers 409 and changes nothing.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req submitRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxSubmitBodySize))
	if err := dec.Decode(&req); err != nil {
		rw.BadRequest("Request body must be a JSON object with a filename field")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	// The analysis outlives a disconnecting browser so observers still see
	// it complete.
	ctx := context.WithoutCancel(r.Context())
	state, err := h.ctrl.TrySubmit(ctx, req.Filename)
	switch {
	case errors.Is(err, controller.ErrInFlight):
		rw.Conflict("An analysis is already in progress")
	case errors.Is(err, controller.ErrEmptyFilename):
		rw.ValidationError(state.Error, view.NewStateView(state))
	default:
		rw.Success(view.NewStateView(state))
	}
}

// Stats returns the usage counters loaded at startup.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(StatsResponse{
		Loaded: h.stats.Loaded(),
		Stats:  h.stats.Stats(),
	})
}

// Commands lists the companion bot's commands.
func (h *Handler) Commands(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(view.BotCommands())
}

func (h *Handler) getUpgrader() gorillaws.Upgrader {
	return gorillaws.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts same-host origins and configured CORS
// origins. Requests without an Origin header are rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Ctx(r.Context()).Warn().Msg("websocket connection rejected: missing Origin header")
		return false
	}
	if origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	for _, allowed := range h.config.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Ctx(r.Context()).Warn().Str("origin", origin).Msg("websocket connection rejected: origin not allowed")
	return false
}

// WebSocket upgrades the connection and registers an observer, then queues
// the current state and, once loaded, the stats.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(h.hub, conn)
	if !h.hub.AddClient(client) {
		_ = conn.Close()
		return
	}

	// Snapshot after registering: any transition from here on is also
	// broadcast, so the client cannot be left on a stale state.
	client.Enqueue(websocket.Message{Type: websocket.MessageTypeState, Data: view.NewStateView(h.ctrl.Snapshot())})
	if h.stats.Loaded() {
		client.Enqueue(websocket.Message{Type: websocket.MessageTypeStats, Data: h.stats.Stats()})
	}
	client.Start()
}
