package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosdac/assistant/internal/models"
)

func msg(id string) models.Message {
	return models.Message{ID: id, Text: "text " + id, Sender: models.SenderUser}
}

func TestBuffer(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps insertion order per session", func(t *testing.T) {
		b := NewBuffer()
		require.NoError(t, b.Append(ctx, "s1", msg("1")))
		require.NoError(t, b.Append(ctx, "s2", msg("x")))
		require.NoError(t, b.Append(ctx, "s1", msg("2")))

		got, err := b.List(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	})

	t.Run("unknown session is empty", func(t *testing.T) {
		got, err := NewBuffer().List(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keeps every message by default", func(t *testing.T) {
		b := NewBuffer()
		for i := 0; i < 150; i++ {
			require.NoError(t, b.Append(ctx, "s", msg(fmt.Sprint(i))))
		}

		got, err := b.List(ctx, "s")
		require.NoError(t, err)
		require.Len(t, got, 150)
		assert.Equal(t, "0", got[0].ID)
	})

	t.Run("trims to max size", func(t *testing.T) {
		b := NewBuffer(WithMaxSize(3))
		for i := 0; i < 5; i++ {
			require.NoError(t, b.Append(ctx, "s", msg(fmt.Sprint(i))))
		}

		got, err := b.List(ctx, "s")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "4", got[2].ID)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		b := NewBuffer()
		require.NoError(t, b.Append(ctx, "s", msg("1")))

		got, _ := b.List(ctx, "s")
		got[0].Text = "changed"

		again, _ := b.List(ctx, "s")
		assert.Equal(t, "text 1", again[0].Text)
	})

	t.Run("clear drops the session", func(t *testing.T) {
		b := NewBuffer()
		require.NoError(t, b.Append(ctx, "s", msg("1")))
		require.NoError(t, b.Clear(ctx, "s"))

		got, err := b.List(ctx, "s")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("session id is required", func(t *testing.T) {
		b := NewBuffer()
		assert.ErrorIs(t, b.Append(ctx, "", msg("1")), ErrNoSession)
		_, err := b.List(ctx, "")
		assert.ErrorIs(t, err, ErrNoSession)
		assert.ErrorIs(t, b.Clear(ctx, ""), ErrNoSession)
	})
}
