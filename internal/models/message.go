// Package models defines the core data structures shared by the assistant:
// knowledge base records, graph nodes and edges, and chat transcript entries.
package models

import "time"

type QueryType string

const (
	QueryDownload   QueryType = "download"
	QueryTechnical  QueryType = "technical"
	QueryGeospatial QueryType = "geospatial"
	QueryMetadata   QueryType = "metadata"
	QueryDocument   QueryType = "document"
	QueryGeneral    QueryType = "general"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one transcript entry. It is never mutated after creation.
type Message struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Sender     Sender    `json:"sender"`
	Timestamp  time.Time `json:"timestamp"`
	Entities   []string  `json:"entities,omitempty"`
	Confidence float64   `json:"confidence"`
	QueryType  QueryType `json:"query_type,omitempty"`
	Sources    []string  `json:"sources,omitempty"`
	Reasoning  string    `json:"reasoning,omitempty"`
}

// Response is the outcome of processing a single query.
type Response struct {
	Response   string    `json:"response"`
	Entities   []string  `json:"entities"`
	Confidence float64   `json:"confidence"`
	QueryType  QueryType `json:"query_type"`
	Sources    []string  `json:"sources"`
	Reasoning  string    `json:"reasoning"`
}
