package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/clock"
	"github.com/mosdac/assistant/internal/memory"
	"github.com/mosdac/assistant/internal/models"
)

var (
	ErrBlankQuery = errors.New("query is blank")
	ErrBusy       = errors.New("a reply is already pending")
	ErrClosed     = errors.New("session is closed")
)

const (
	GreetingText = "Hello! I'm your MOSDAC AI Assistant. I can help you find satellite data, documentation, " +
		"and answer questions about our portal. Try asking about satellite missions, data products, " +
		"or specific geographical areas."
	GreetingConfidence = 0.98

	ApologyText = "I apologize, but I encountered an error processing your query. Please try again."
)

// Notifier receives the toast raised after each reply.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// Jitter is the random source for reply latency. *math/rand/v2.Rand
// satisfies it.
type Jitter interface {
	Int64N(n int64) int64
}

// Session is one chat transcript. At most one reply is pending at a time,
// and nothing is appended after Close.
type Session struct {
	id        string
	createdAt time.Time

	engine   Processor
	store    memory.Store
	sched    clock.Scheduler
	notifier Notifier
	logger   zerolog.Logger
	delay    time.Duration
	jitter   time.Duration
	rnd      Jitter

	mu     sync.Mutex
	typing bool
	closed bool
	timer  clock.Timer
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

func (s *Session) Messages(ctx context.Context) ([]models.Message, error) {
	return s.store.List(ctx, s.id)
}

// Submit appends the user's message and schedules the bot reply. Blank
// input is rejected, as is any submission while a reply is pending.
func (s *Session) Submit(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrBlankQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.Message{}, ErrClosed
	}
	if s.typing {
		return models.Message{}, ErrBusy
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
	}
	if err := s.store.Append(ctx, s.id, msg); err != nil {
		return models.Message{}, fmt.Errorf("failed to store message: %w", err)
	}

	s.typing = true
	s.timer = s.sched.AfterFunc(s.latency(), func() { s.reply(text) })
	return msg, nil
}

func (s *Session) latency() time.Duration {
	d := s.delay
	if s.jitter > 0 && s.rnd != nil {
		d += time.Duration(s.rnd.Int64N(int64(s.jitter) + 1))
	}
	return d
}

func (s *Session) reply(query string) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}

	msg, failed := s.answer(query)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	err := s.store.Append(context.Background(), s.id, msg)
	s.typing = false
	s.timer = nil
	s.mu.Unlock()

	if err != nil {
		s.logger.Error().Err(err).Str("session_id", s.id).Msg("failed to store reply")
	}

	if s.notifier == nil {
		return
	}
	if failed {
		s.notifier.Error("Processing failed", "The assistant could not answer that query.")
		return
	}
	s.notifier.Success("AI Processing Complete",
		fmt.Sprintf("Query processed with %.0f%% confidence", msg.Confidence*100))
}

// answer runs the engine. Errors and panics become the apology message.
func (s *Session) answer(query string) (msg models.Message, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Str("session_id", s.id).Msg("query processing panicked")
			msg, failed = apology(), true
		}
	}()

	resp, err := s.engine.Process(context.Background(), query)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", s.id).Msg("query processing failed")
		return apology(), true
	}

	return models.Message{
		ID:         uuid.NewString(),
		Text:       resp.Response,
		Sender:     models.SenderBot,
		Timestamp:  time.Now(),
		Entities:   resp.Entities,
		Confidence: resp.Confidence,
		QueryType:  resp.QueryType,
		Sources:    resp.Sources,
		Reasoning:  resp.Reasoning,
	}, false
}

func apology() models.Message {
	return models.Message{
		ID:         uuid.NewString(),
		Text:       ApologyText,
		Sender:     models.SenderBot,
		Timestamp:  time.Now(),
		Confidence: 0,
		QueryType:  models.QueryGeneral,
	}
}

// Close cancels any pending reply and drops the transcript. It is safe to
// call more than once.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.typing = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if err := s.store.Clear(ctx, s.id); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}
	return nil
}
