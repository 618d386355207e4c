package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/graph"
	"github.com/mosdac/assistant/internal/render"
)

type ClickResponse struct {
	Selected string       `json:"selected,omitempty"`
	Panel    *graph.Panel `json:"panel"`
}

// GraphHandler serves both graph panels. Each variant keeps its own
// selection.
type GraphHandler struct {
	views  map[graph.Variant]*graph.View
	logger zerolog.Logger
}

func NewGraphHandler(logger zerolog.Logger) (*GraphHandler, error) {
	views := make(map[graph.Variant]*graph.View, len(graph.Variants))
	for _, v := range graph.Variants {
		view, err := graph.NewView(v)
		if err != nil {
			return nil, err
		}
		views[v] = view
	}
	return &GraphHandler{views: views, logger: logger}, nil
}

// View returns the panel for a variant.
func (h *GraphHandler) View(v graph.Variant) (*graph.View, bool) {
	view, ok := h.views[v]
	return view, ok
}

func (h *GraphHandler) view(w http.ResponseWriter, r *http.Request) (*graph.View, bool) {
	v, err := graph.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return nil, false
	}
	view, ok := h.views[v]
	if !ok {
		writeError(w, r, http.StatusNotFound, "graph not loaded")
		return nil, false
	}
	return view, true
}

func (h *GraphHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("refresh") == "true" {
		view.Refresh()
	}
	writeJSON(w, r, http.StatusOK, view.Snapshot())
}

func (h *GraphHandler) Click(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}

	var p graph.Point
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, hit := view.Click(p)
	resp := ClickResponse{Selected: id}
	if hit {
		if panel, err := view.Panel(id); err == nil {
			resp.Panel = &panel
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *GraphHandler) Panel(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	panel, ok := view.SelectedPanel()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no node selected")
		return
	}
	writeJSON(w, r, http.StatusOK, panel)
}

func (h *GraphHandler) Render(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, format, view.Snapshot()); err != nil {
		if errors.Is(err, render.ErrUnknownFormat) {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("variant", string(view.Variant())).Msg("failed to render graph")
		writeError(w, r, http.StatusInternalServerError, "failed to render graph")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
