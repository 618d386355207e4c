// Package memory stores chat transcripts per session.
package memory

import (
	"context"
	"errors"

	"github.com/mosdac/assistant/internal/models"
)

var ErrNoSession = errors.New("session id is required")

// Store keeps an insertion-ordered transcript per session.
type Store interface {
	Append(ctx context.Context, sessionID string, msg models.Message) error
	List(ctx context.Context, sessionID string) ([]models.Message, error)
	Clear(ctx context.Context, sessionID string) error
}
