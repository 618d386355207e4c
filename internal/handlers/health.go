// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mosdac/assistant/internal/assistant"
	"github.com/mosdac/assistant/internal/graph"
	"github.com/mosdac/assistant/internal/knowledge"
)

const (
	healthy  = "healthy"
	degraded = "degraded"

	pingTimeout = 2 * time.Second
)

type KnowledgeHealth struct {
	Missions    int `json:"missions"`
	Locations   int `json:"locations"`
	DataFormats int `json:"data_formats"`
	Documents   int `json:"documents"`
}

type GraphHealth struct {
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
	Selected string `json:"selected,omitempty"`
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Service   string                 `json:"service"`
	Uptime    string                 `json:"uptime"`
	Knowledge KnowledgeHealth        `json:"knowledge"`
	Graphs    map[string]GraphHealth `json:"graphs"`
	Sessions  int                    `json:"sessions"`
	Store     string                 `json:"store"`
	Problems  []string               `json:"problems,omitempty"`
}

// PingFunc checks an external transcript store.
type PingFunc func(ctx context.Context) error

// HealthHandler reports what the service has loaded and whether the
// transcript store answers. Any problem turns the status to degraded and the
// code to 503.
type HealthHandler struct {
	kb       *knowledge.Base
	graphs   *GraphHandler
	sessions *assistant.Sessions
	ping     PingFunc
	started  time.Time
}

// NewHealthHandler takes the components to inspect. A nil ping means the
// in-memory store.
func NewHealthHandler(kb *knowledge.Base, graphs *GraphHandler, sessions *assistant.Sessions, ping PingFunc) *HealthHandler {
	if kb == nil {
		kb = knowledge.Default()
	}
	return &HealthHandler{
		kb:       kb,
		graphs:   graphs,
		sessions: sessions,
		ping:     ping,
		started:  time.Now(),
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	response := HealthResponse{
		Status:    healthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "mosdac-assistant",
		Uptime:    time.Since(h.started).String(),
		Knowledge: KnowledgeHealth{
			Missions:    len(h.kb.Missions()),
			Locations:   len(h.kb.Locations()),
			DataFormats: len(h.kb.DataFormats()),
			Documents:   len(h.kb.Documents()),
		},
		Graphs: make(map[string]GraphHealth, len(graph.Variants)),
		Store:  "memory",
	}

	for _, v := range graph.Variants {
		view, ok := h.lookup(v)
		if !ok {
			response.Problems = append(response.Problems, fmt.Sprintf("graph %s: not loaded", v))
			continue
		}
		if err := view.Validate(); err != nil {
			response.Problems = append(response.Problems, fmt.Sprintf("graph %s: %v", v, err))
		}
		g := view.Snapshot()
		response.Graphs[string(v)] = GraphHealth{Nodes: len(g.Nodes), Edges: len(g.Edges), Selected: g.Selected}
	}

	if h.sessions != nil {
		response.Sessions = h.sessions.Len()
	}

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			response.Store = "unreachable"
			response.Problems = append(response.Problems, fmt.Sprintf("store: %v", err))
		} else {
			response.Store = "redis"
		}
	}

	status := http.StatusOK
	if len(response.Problems) > 0 {
		response.Status = degraded
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, response)
}

func (h *HealthHandler) lookup(v graph.Variant) (*graph.View, bool) {
	if h.graphs == nil {
		return nil, false
	}
	return h.graphs.View(v)
}
