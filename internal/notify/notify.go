// Package notify keeps a short history of user-facing toasts and mirrors each
// one to the structured log.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Toast struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier is safe for concurrent use. Only the newest max toasts are kept.
type Notifier struct {
	mu     sync.Mutex
	logger zerolog.Logger
	toasts []Toast
	max    int
}

func New(logger zerolog.Logger, max int) *Notifier {
	if max <= 0 {
		max = 20
	}
	return &Notifier{logger: logger, max: max}
}

func (n *Notifier) Success(title, message string) {
	n.push(LevelSuccess, title, message)
}

func (n *Notifier) Error(title, message string) {
	n.push(LevelError, title, message)
}

func (n *Notifier) push(level Level, title, message string) {
	t := Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}

	ev := n.logger.Info()
	if level == LevelError {
		ev = n.logger.Warn()
	}
	ev.Str("toast_id", t.ID).Str("title", title).Msg(message)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.toasts = append(n.toasts, t)
	if len(n.toasts) > n.max {
		n.toasts = n.toasts[len(n.toasts)-n.max:]
	}
}

// Recent returns the retained toasts, oldest first.
func (n *Notifier) Recent() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Toast, len(n.toasts))
	copy(out, n.toasts)
	return out
}
