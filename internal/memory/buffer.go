package memory

import (
	"context"
	"sync"

	"github.com/mosdac/assistant/internal/models"
)

// Buffer is an in-process Store.
type Buffer struct {
	messages map[string][]models.Message
	maxSize  int
	mu       sync.RWMutex
}

type BufferOption func(*Buffer)

// WithMaxSize keeps only the newest size messages per session. Zero keeps
// everything.
func WithMaxSize(size int) BufferOption {
	return func(b *Buffer) {
		b.maxSize = size
	}
}

func NewBuffer(options ...BufferOption) *Buffer {
	b := &Buffer{
		messages: make(map[string][]models.Message),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *Buffer) Append(_ context.Context, sessionID string, msg models.Message) error {
	if sessionID == "" {
		return ErrNoSession
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.messages[sessionID] = append(b.messages[sessionID], msg)
	if b.maxSize > 0 && len(b.messages[sessionID]) > b.maxSize {
		b.messages[sessionID] = b.messages[sessionID][len(b.messages[sessionID])-b.maxSize:]
	}
	return nil
}

func (b *Buffer) List(_ context.Context, sessionID string) ([]models.Message, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	msgs := b.messages[sessionID]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (b *Buffer) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.messages, sessionID)
	return nil
}
