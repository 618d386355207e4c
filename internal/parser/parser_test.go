package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosdac/assistant/internal/knowledge"
	"github.com/mosdac/assistant/internal/models"
)

func newParser() *Parser {
	return New(knowledge.Default())
}

func hits(scores ...float64) []models.Hit {
	out := make([]models.Hit, len(scores))
	for i, s := range scores {
		out[i] = models.Hit{Document: models.Document{ID: "doc", Type: models.KindMission, Entity: "INSAT"}, Score: s}
	}
	return out
}

func TestExtractEntities(t *testing.T) {
	p := newParser()

	t.Run("empty query yields no entities", func(t *testing.T) {
		entities := p.ExtractEntities("")
		assert.NotNil(t, entities)
		assert.Empty(t, entities)
	})

	t.Run("mission and technical term", func(t *testing.T) {
		assert.Equal(t, []string{"INSAT", "RESOLUTION"}, p.ExtractEntities("INSAT resolution"))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"CARTOSAT", "DOWNLOAD"}, p.ExtractEntities("How to download cartosat imagery?"))
	})

	t.Run("overlapping locations are all reported", func(t *testing.T) {
		assert.Equal(t, []string{"Mumbai", "Delhi"}, p.ExtractEntities("compare delhi and mumbai"))
	})

	t.Run("order follows table order not query order", func(t *testing.T) {
		entities := p.ExtractEntities("KML export of OCEANSAT data over Chennai")
		assert.Equal(t, []string{"OCEANSAT", "Chennai", "KML"}, entities)
	})

	t.Run("data formats and several technical terms", func(t *testing.T) {
		entities := p.ExtractEntities("api access to HDF5 format with sensor coverage")
		assert.Equal(t, []string{"HDF5", "API", "ACCESS", "COVERAGE", "SENSOR", "FORMAT"}, entities)
	})

	t.Run("no stemming or fuzzy matching", func(t *testing.T) {
		assert.Empty(t, p.ExtractEntities("in-sat-like carto sat"))
	})
}

func TestClassifyQuery(t *testing.T) {
	p := newParser()

	cases := []struct {
		name  string
		query string
		want  models.QueryType
	}{
		{"empty", "", models.QueryGeneral},
		{"download keyword", "How to download CARTOSAT imagery?", models.QueryDownload},
		{"access keyword", "access to data", models.QueryDownload},
		{"get wins over mission", "get INSAT products", models.QueryDownload},
		{"get inside a word", "target area", models.QueryDownload},
		{"download wins over api", "download via api", models.QueryDownload},
		{"api keyword", "INSAT api", models.QueryTechnical},
		{"code keyword", "sample code please", models.QueryTechnical},
		{"program keyword", "programmatic Mumbai", models.QueryTechnical},
		{"location before mission", "INSAT over Mumbai", models.QueryGeospatial},
		{"mission only", "INSAT resolution", models.QueryMetadata},
		{"mission before format", "OCEANSAT file format", models.QueryMetadata},
		{"format keyword", "which format is best", models.QueryDocument},
		{"document keyword", "user documentation", models.QueryDocument},
		{"fallback", "hello there", models.QueryGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ClassifyQuery(tc.query))
		})
	}

	t.Run("classification can disagree with extraction", func(t *testing.T) {
		q := "get RESOURCESAT vegetation index"
		assert.Contains(t, p.ExtractEntities(q), "RESOURCESAT")
		assert.Equal(t, models.QueryDownload, p.ClassifyQuery(q))
	})
}

func TestCalculateConfidence(t *testing.T) {
	p := newParser()

	t.Run("empty query is the base score", func(t *testing.T) {
		assert.Equal(t, 0.5, p.CalculateConfidence("", nil, nil))
	})

	t.Run("each entity adds a tenth", func(t *testing.T) {
		assert.InDelta(t, 0.7, p.CalculateConfidence("api format", []string{"API", "FORMAT"}, nil), 1e-9)
	})

	t.Run("specific entity bonus", func(t *testing.T) {
		got := p.CalculateConfidence("INSAT resolution", []string{"INSAT", "RESOLUTION"}, nil)
		assert.InDelta(t, 0.9, got, 1e-9)
	})

	t.Run("bonus is applied once", func(t *testing.T) {
		got := p.CalculateConfidence("q", []string{"Mumbai"}, nil)
		assert.InDelta(t, 0.8, got, 1e-9)
	})

	t.Run("data formats are not specific", func(t *testing.T) {
		got := p.CalculateConfidence("q", []string{"GeoTIFF"}, nil)
		assert.InDelta(t, 0.6, got, 1e-9)
	})

	t.Run("retrieval term uses the mean score", func(t *testing.T) {
		got := p.CalculateConfidence("q", nil, hits(0.2, 0.4))
		assert.InDelta(t, 0.5+0.3*0.4, got, 1e-9)
	})

	t.Run("download scenario", func(t *testing.T) {
		q := "How to download CARTOSAT imagery?"
		got := p.CalculateConfidence(q, p.ExtractEntities(q), nil)
		assert.GreaterOrEqual(t, got, 0.6)
	})

	t.Run("clamped at the ceiling", func(t *testing.T) {
		entities := []string{"INSAT", "Mumbai", "API", "ACCESS", "FORMAT"}
		got := p.CalculateConfidence("q", entities, hits(1, 1, 1))
		assert.Equal(t, MaxConfidence, got)
	})
}

func TestExplainReasoning(t *testing.T) {
	p := newParser()

	t.Run("only trailer clauses", func(t *testing.T) {
		assert.Equal(t,
			"Applied semantic analysis and contextual understanding • Generated response using retrieval-augmented generation (RAG)",
			p.ExplainReasoning("", nil, nil))
	})

	t.Run("entities and documents", func(t *testing.T) {
		got := p.ExplainReasoning("q", []string{"INSAT", "RESOLUTION"}, hits(0.5, 0.25))
		assert.Equal(t,
			"Identified 2 key entities: INSAT, RESOLUTION • "+
				"Retrieved 2 relevant documents from knowledge graph • "+
				"Average relevance score: 37.5% • "+
				"Applied semantic analysis and contextual understanding • "+
				"Generated response using retrieval-augmented generation (RAG)",
			got)
	})
}

func TestNewDefaultsKnowledgeBase(t *testing.T) {
	p := New(nil)
	assert.Equal(t, models.QueryMetadata, p.ClassifyQuery("OCEANSAT"))
}
