package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mosdac/assistant/internal/models"
)

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("ai")
	require.NoError(t, err)
	assert.Equal(t, VariantAI, v)

	_, err = ParseVariant("3d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = NewView("3d")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNewView(t *testing.T) {
	t.Run("classic dataset", func(t *testing.T) {
		v, err := NewView(VariantClassic)
		require.NoError(t, err)

		g := v.Snapshot()
		assert.Len(t, g.Nodes, 11)
		assert.Len(t, g.Edges, 10)
		assert.Equal(t, "classic", g.Variant)
		assert.Empty(t, g.Selected)
		assert.Equal(t, 30.0, v.Variant().Radius())
		assert.NoError(t, v.Validate())
	})

	t.Run("ai dataset and metrics", func(t *testing.T) {
		v, err := NewView(VariantAI)
		require.NoError(t, err)

		s := v.Stats()
		assert.Equal(t, 8, s.TotalNodes)
		assert.Equal(t, 6, s.TotalEdges)
		assert.InDelta(t, 0.935, s.AvgConfidence, 1e-9)
		assert.InDelta(t, 81.25, s.ProcessingSpeed, 1e-9)
		assert.InDelta(t, 0.75, s.KnowledgeDepth, 1e-9)
		assert.Equal(t, 3, s.NodesByType[models.NodeMission])
		assert.Equal(t, 35.0, v.Variant().Radius())
		assert.NoError(t, v.Validate())
	})
}

func TestClick(t *testing.T) {
	v, err := NewView(VariantClassic)
	require.NoError(t, err)

	t.Run("inside radius selects", func(t *testing.T) {
		id, ok := v.Click(Point{X: 160, Y: 110})
		require.True(t, ok)
		assert.Equal(t, "insat", id)

		n, ok := v.Selected()
		require.True(t, ok)
		assert.Equal(t, "INSAT Series", n.Label)
	})

	t.Run("on the boundary selects", func(t *testing.T) {
		id, ok := v.Click(Point{X: 330, Y: 100})
		require.True(t, ok)
		assert.Equal(t, "resourcesat", id)
	})

	t.Run("empty space clears", func(t *testing.T) {
		_, ok := v.Click(Point{X: 600, Y: 600})
		assert.False(t, ok)
		_, ok = v.Selected()
		assert.False(t, ok)
	})

	t.Run("ai radius", func(t *testing.T) {
		ai, err := NewView(VariantAI)
		require.NoError(t, err)

		id, ok := ai.Click(Point{X: 334, Y: 50})
		require.True(t, ok)
		assert.Equal(t, "nlp_engine", id)

		_, ok = ai.Click(Point{X: 340, Y: 50})
		assert.False(t, ok)
	})
}

func TestRefreshClearsSelection(t *testing.T) {
	v, err := NewView(VariantAI)
	require.NoError(t, err)

	require.NoError(t, v.Select("api_gateway"))
	_, ok := v.Selected()
	require.True(t, ok)

	v.Refresh()
	_, ok = v.Selected()
	assert.False(t, ok)
	assert.Len(t, v.Snapshot().Nodes, 8)
}

func TestSelect(t *testing.T) {
	v, err := NewView(VariantClassic)
	require.NoError(t, err)

	assert.ErrorIs(t, v.Select("nope"), ErrNodeNotFound)
	require.NoError(t, v.Select("cartosat"))
	assert.Equal(t, "cartosat", v.Snapshot().Selected)
	require.NoError(t, v.Select(""))
	assert.Empty(t, v.Snapshot().Selected)
}

func TestSnapshotIsCopy(t *testing.T) {
	v, err := NewView(VariantClassic)
	require.NoError(t, err)

	g := v.Snapshot()
	g.Nodes[0].Label = "changed"
	assert.Equal(t, "INSAT Series", v.Snapshot().Nodes[0].Label)
}

func TestValidate(t *testing.T) {
	nodes := []models.Node{{ID: "a"}, {ID: "b"}}

	assert.NoError(t, validate(nodes, []models.Edge{{Source: "a", Target: "b"}}))
	assert.ErrorIs(t, validate(nodes, []models.Edge{{Source: "a", Target: "c"}}), ErrNodeNotFound)
	assert.ErrorIs(t, validate(nodes, []models.Edge{{Source: "x", Target: "b"}}), ErrNodeNotFound)
	assert.Error(t, validate([]models.Node{{ID: "a"}, {ID: "a"}}, nil))
}

func TestClickProperties(t *testing.T) {
	for _, variant := range Variants {
		t.Run(string(variant), func(t *testing.T) {
			v, err := NewView(variant)
			require.NoError(t, err)
			nodes := v.Snapshot().Nodes
			radius := variant.Radius()

			rapid.Check(t, func(t *rapid.T) {
				n := rapid.SampledFrom(nodes).Draw(t, "node")
				id, ok := v.Click(Point{X: n.X, Y: n.Y})
				if !ok || id != n.ID {
					t.Fatalf("click at centre of %s selected %q", n.ID, id)
				}
			})

			rapid.Check(t, func(t *rapid.T) {
				p := Point{
					X: rapid.Float64Range(-200, 800).Draw(t, "x"),
					Y: rapid.Float64Range(-200, 800).Draw(t, "y"),
				}
				near := false
				for _, n := range nodes {
					if math.Hypot(p.X-n.X, p.Y-n.Y) <= radius {
						near = true
						break
					}
				}
				id, ok := v.Click(p)
				if ok != near {
					t.Fatalf("click at %v: selected=%v (%q), near=%v", p, ok, id, near)
				}
				if !near && v.Snapshot().Selected != "" {
					t.Fatalf("selection not cleared")
				}
			})
		})
	}
}
