// Package retrieval ranks knowledge base documents against a query using a
// small bag-of-words embedding and cosine similarity.
package retrieval

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/mosdac/assistant/internal/models"
)

// DefaultTopK is the number of hits returned by Search.
const DefaultTopK = 3

// Vocabulary defines the embedding dimensions.
var Vocabulary = []string{"satellite", "data", "india", "mission", "weather", "ocean", "land", "image", "resolution", "coverage"}

// Embed maps text onto Vocabulary. Component i is the fraction of words that
// contain, or are contained in, Vocabulary[i].
func Embed(text string) []float64 {
	words := strings.Fields(strings.ToLower(text))
	vec := make([]float64, len(Vocabulary))
	denom := math.Max(float64(len(words)), 1)

	for i, v := range Vocabulary {
		matches := 0
		for _, w := range words {
			if strings.Contains(w, v) || strings.Contains(v, w) {
				matches++
			}
		}
		vec[i] = float64(matches) / denom
	}

	return vec
}

// Cosine returns the cosine similarity of a and b, or 0 when either has zero
// magnitude or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

type Index struct {
	docs []models.Document
	vecs [][]float64
	topK int
}

type Option func(*Index)

func WithTopK(k int) Option {
	return func(ix *Index) {
		if k > 0 {
			ix.topK = k
		}
	}
}

// NewIndex embeds docs once. Document order is kept for tie breaking.
func NewIndex(docs []models.Document, opts ...Option) *Index {
	ix := &Index{
		docs: docs,
		vecs: make([][]float64, len(docs)),
		topK: DefaultTopK,
	}
	for _, opt := range opts {
		opt(ix)
	}
	for i, d := range docs {
		ix.vecs[i] = Embed(d.Text)
	}
	return ix
}

func (ix *Index) Len() int { return len(ix.docs) }

// Search returns up to topK hits for query. A blank query retrieves nothing.
// A query with no vocabulary words still ranks every document, all at score
// 0, so the first topK documents come back in index order.
func (ix *Index) Search(query string) []models.Hit {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	qv := Embed(query)
	hits := make([]models.Hit, len(ix.docs))
	for i, d := range ix.docs {
		hits[i] = models.Hit{Document: d, Score: Cosine(qv, ix.vecs[i])}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > ix.topK {
		hits = hits[:ix.topK]
	}
	return hits
}
