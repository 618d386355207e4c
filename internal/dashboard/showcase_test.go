package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowcase(t *testing.T) {
	c := Showcase()

	t.Run("core features in order", func(t *testing.T) {
		require.Len(t, c.CoreFeatures, 4)
		ids := make([]string, 0, 4)
		for _, f := range c.CoreFeatures {
			ids = append(ids, f.ID)
		}
		assert.Equal(t, []string{"nlp", "rag", "kg", "modular"}, ids)
	})

	t.Run("metrics keep their order", func(t *testing.T) {
		f, ok := c.Feature("modular")
		require.True(t, ok)
		require.Len(t, f.Metrics, 3)
		assert.Equal(t, "uptime", f.Metrics[0].Key)
		assert.Equal(t, "99.9%", f.Metrics[0].Value)
		assert.Equal(t, "< 5min", f.Metrics[2].Value)

		nlp, ok := c.Feature("nlp")
		require.True(t, ok)
		v, ok := nlp.Metrics.Get("accuracy")
		require.True(t, ok)
		assert.Equal(t, 92, v)
	})

	t.Run("stack and deployment", func(t *testing.T) {
		require.Len(t, c.TechnicalStack, 3)
		assert.Equal(t, "AI/ML Stack", c.TechnicalStack[1].Category)
		assert.Equal(t, "Redis", c.TechnicalStack[2].Technologies[2].Name)
		require.Len(t, c.Deployment, 4)
		assert.Contains(t, c.Deployment[2].Features, "OAuth 2.0")
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, ok := c.Feature("quantum")
		assert.False(t, ok)
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := ParseCatalog([]byte("core_features: ["))
		assert.Error(t, err)
		_, err = ParseCatalog([]byte("deployment: []"))
		assert.Error(t, err)
	})
}
