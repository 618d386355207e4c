// Package assistant ties entity extraction, classification, retrieval and
// templating into a single query pipeline, and runs chat sessions on top of
// it with simulated typing latency.
package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/knowledge"
	"github.com/mosdac/assistant/internal/models"
	"github.com/mosdac/assistant/internal/parser"
	"github.com/mosdac/assistant/internal/responder"
	"github.com/mosdac/assistant/internal/retrieval"
)

// Processor answers a single query.
type Processor interface {
	Process(ctx context.Context, query string) (models.Response, error)
}

type Engine struct {
	parser    *parser.Parser
	index     *retrieval.Index
	responder *responder.Responder
	logger    zerolog.Logger

	rnd  responder.Rand
	topK int
}

type EngineOption func(*Engine)

func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRand sets the source used to pick between alternative paragraphs.
func WithRand(rnd responder.Rand) EngineOption {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

func WithTopK(k int) EngineOption {
	return func(e *Engine) {
		e.topK = k
	}
}

// NewEngine builds the pipeline over kb. A nil kb uses the embedded
// knowledge base.
func NewEngine(kb *knowledge.Base, options ...EngineOption) *Engine {
	if kb == nil {
		kb = knowledge.Default()
	}

	e := &Engine{
		logger: zerolog.Nop(),
		topK:   retrieval.DefaultTopK,
	}
	for _, option := range options {
		option(e)
	}

	e.parser = parser.New(kb)
	e.index = retrieval.NewIndex(kb.Documents(), retrieval.WithTopK(e.topK))
	e.responder = responder.New(kb, e.rnd)
	return e
}

// Process runs extraction, classification, retrieval, templating and
// scoring for query.
func (e *Engine) Process(ctx context.Context, query string) (models.Response, error) {
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	start := time.Now()

	entities := e.parser.ExtractEntities(query)
	queryType := e.parser.ClassifyQuery(query)
	hits := e.index.Search(query)

	text, err := e.responder.Respond(query, queryType, entities, hits)
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to generate response: %w", err)
	}

	sources := make([]string, 0, len(hits))
	for _, h := range hits {
		sources = append(sources, h.Source())
	}

	resp := models.Response{
		Response:   text,
		Entities:   entities,
		Confidence: e.parser.CalculateConfidence(query, entities, hits),
		QueryType:  queryType,
		Sources:    sources,
		Reasoning:  e.parser.ExplainReasoning(query, entities, hits),
	}

	e.logger.Debug().
		Str("query_type", string(queryType)).
		Strs("entities", entities).
		Int("hits", len(hits)).
		Float64("confidence", resp.Confidence).
		Dur("elapsed", time.Since(start)).
		Msg("processed query")

	return resp, nil
}
