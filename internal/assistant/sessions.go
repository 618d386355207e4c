package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/clock"
	"github.com/mosdac/assistant/internal/memory"
	"github.com/mosdac/assistant/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultDelay is the simulated typing latency before a reply.
const DefaultDelay = 1500 * time.Millisecond

// Sessions owns every open chat session.
type Sessions struct {
	engine   Processor
	store    memory.Store
	sched    clock.Scheduler
	notifier Notifier
	logger   zerolog.Logger
	delay    time.Duration
	jitter   time.Duration
	rnd      Jitter

	mu       sync.RWMutex
	sessions map[string]*Session
}

type SessionsOption func(*Sessions)

func WithScheduler(sched clock.Scheduler) SessionsOption {
	return func(s *Sessions) {
		s.sched = sched
	}
}

func WithNotifier(n Notifier) SessionsOption {
	return func(s *Sessions) {
		s.notifier = n
	}
}

func WithSessionLogger(logger zerolog.Logger) SessionsOption {
	return func(s *Sessions) {
		s.logger = logger
	}
}

// WithDelay sets the base reply latency and the maximum uniform jitter
// added to it.
func WithDelay(delay, jitter time.Duration, rnd Jitter) SessionsOption {
	return func(s *Sessions) {
		s.delay = delay
		s.jitter = jitter
		s.rnd = rnd
	}
}

func NewSessions(engine Processor, store memory.Store, options ...SessionsOption) *Sessions {
	s := &Sessions{
		engine:   engine,
		store:    store,
		sched:    clock.Real{},
		logger:   zerolog.Nop(),
		delay:    DefaultDelay,
		sessions: make(map[string]*Session),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Create opens a session whose transcript starts with the greeting.
func (s *Sessions) Create(ctx context.Context) (*Session, error) {
	sess := &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		engine:    s.engine,
		store:     s.store,
		sched:     s.sched,
		notifier:  s.notifier,
		logger:    s.logger,
		delay:     s.delay,
		jitter:    s.jitter,
		rnd:       s.rnd,
	}

	greeting := models.Message{
		ID:         uuid.NewString(),
		Text:       GreetingText,
		Sender:     models.SenderBot,
		Timestamp:  sess.createdAt,
		Confidence: GreetingConfidence,
	}
	if err := s.store.Append(ctx, sess.id, greeting); err != nil {
		return nil, fmt.Errorf("failed to store greeting: %w", err)
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info().Str("session_id", sess.id).Msg("session opened")
	return sess, nil
}

func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// Close tears down and forgets the session.
func (s *Sessions) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.logger.Info().Str("session_id", id).Msg("session closed")
	return sess.Close(ctx)
}

// CloseAll tears down every session, returning the first error.
func (s *Sessions) CloseAll(ctx context.Context) error {
	s.mu.Lock()
	open := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	var first error
	for _, sess := range open {
		if err := sess.Close(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
