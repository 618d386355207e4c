package assistant

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosdac/assistant/internal/models"
)

func TestEngineProcess(t *testing.T) {
	e := NewEngine(nil, WithRand(rand.New(rand.NewPCG(1, 2))))

	t.Run("mission query", func(t *testing.T) {
		resp, err := e.Process(context.Background(), "INSAT resolution")
		require.NoError(t, err)

		assert.Equal(t, models.QueryMetadata, resp.QueryType)
		assert.Equal(t, []string{"INSAT", "RESOLUTION"}, resp.Entities)
		assert.Contains(t, resp.Response, "INSAT")
		assert.NotEmpty(t, resp.Sources)
		assert.LessOrEqual(t, len(resp.Sources), 3)
		assert.GreaterOrEqual(t, resp.Confidence, 0.9)
		assert.LessOrEqual(t, resp.Confidence, 0.98)
		assert.Contains(t, resp.Reasoning, "Identified 2 key entities")
	})

	t.Run("empty query", func(t *testing.T) {
		resp, err := e.Process(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, models.QueryGeneral, resp.QueryType)
		assert.Empty(t, resp.Entities)
		assert.Empty(t, resp.Sources)
		assert.NotNil(t, resp.Sources)
		assert.Equal(t, 0.5, resp.Confidence)
	})

	t.Run("download query", func(t *testing.T) {
		resp, err := e.Process(context.Background(), "How to download CARTOSAT imagery?")
		require.NoError(t, err)

		assert.Equal(t, models.QueryDownload, resp.QueryType)
		assert.Contains(t, resp.Entities, "CARTOSAT")
		assert.GreaterOrEqual(t, resp.Confidence, 0.6)
	})

	t.Run("bare mission name ranks documents at zero", func(t *testing.T) {
		resp, err := e.Process(context.Background(), "INSAT")
		require.NoError(t, err)

		assert.Equal(t, models.QueryMetadata, resp.QueryType)
		assert.Equal(t, []string{"INSAT"}, resp.Entities)
		assert.Equal(t, []string{"mission: INSAT", "mission: RESOURCESAT", "mission: CARTOSAT"}, resp.Sources)
		assert.InDelta(t, 0.8, resp.Confidence, 1e-9)
		assert.Contains(t, resp.Reasoning, "Average relevance score: 0.0%")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.Process(ctx, "INSAT")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEngineTopK(t *testing.T) {
	e := NewEngine(nil, WithTopK(1))

	resp, err := e.Process(context.Background(), "satellite data for india weather")
	require.NoError(t, err)
	assert.Len(t, resp.Sources, 1)
}
