package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/assistant"
)

type ClassifyRequest struct {
	Query string `json:"query"`
}

// ClassifyHandler answers a query synchronously, without the typing delay.
type ClassifyHandler struct {
	engine assistant.Processor
	logger zerolog.Logger
}

func NewClassifyHandler(engine assistant.Processor, logger zerolog.Logger) *ClassifyHandler {
	return &ClassifyHandler{engine: engine, logger: logger}
}

func (h *ClassifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.engine.Process(r.Context(), req.Query)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to process query")
		writeError(w, r, http.StatusInternalServerError, "failed to process query")
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}
