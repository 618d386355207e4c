package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/assistant"
	"github.com/mosdac/assistant/internal/models"
)

type SessionResponse struct {
	ID       string           `json:"id"`
	Typing   bool             `json:"typing"`
	Messages []models.Message `json:"messages"`
}

type MessageRequest struct {
	Text string `json:"text"`
}

// ChatHandler serves the chat transcript endpoints.
type ChatHandler struct {
	sessions *assistant.Sessions
	logger   zerolog.Logger
}

func NewChatHandler(sessions *assistant.Sessions, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{sessions: sessions, logger: logger}
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create session")
		writeError(w, r, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.writeSession(w, r, http.StatusCreated, sess)
}

func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.writeSession(w, r, http.StatusOK, sess)
}

func (h *ChatHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := sess.Submit(r.Context(), req.Text)
	switch {
	case errors.Is(err, assistant.ErrBlankQuery):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, assistant.ErrBusy):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, assistant.ErrClosed):
		writeError(w, r, http.StatusGone, err.Error())
	case err != nil:
		h.logger.Error().Err(err).Str("session_id", sess.ID()).Msg("failed to submit message")
		writeError(w, r, http.StatusInternalServerError, "failed to submit message")
	default:
		writeJSON(w, r, http.StatusAccepted, msg)
	}
}

func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.sessions.Close(r.Context(), id)
	switch {
	case errors.Is(err, assistant.ErrSessionNotFound):
		writeError(w, r, http.StatusNotFound, "session not found")
	case err != nil:
		h.logger.Error().Err(err).Str("session_id", id).Msg("failed to close session")
		writeError(w, r, http.StatusInternalServerError, "failed to close session")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *ChatHandler) lookup(w http.ResponseWriter, r *http.Request) (*assistant.Session, bool) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

func (h *ChatHandler) writeSession(w http.ResponseWriter, r *http.Request, status int, sess *assistant.Session) {
	msgs, err := sess.Messages(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Str("session_id", sess.ID()).Msg("failed to list messages")
		writeError(w, r, http.StatusInternalServerError, "failed to load transcript")
		return
	}
	writeJSON(w, r, status, SessionResponse{ID: sess.ID(), Typing: sess.Typing(), Messages: msgs})
}
