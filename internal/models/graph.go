// Package models defines the core data structures shared by the assistant:
// knowledge base records, graph nodes and edges, and chat transcript entries.
package models

import (
	"fmt"
	"strings"
)

// NodeType tags a graph node. The classic and AI graphs use different sets.
type NodeType string

const (
	NodeMission   NodeType = "mission"
	NodeData      NodeType = "data"
	NodeLocation  NodeType = "location"
	NodeDocument  NodeType = "document"
	NodeUserQuery NodeType = "user_query"

	NodeDataProduct     NodeType = "data_product"
	NodeAPIEndpoint     NodeType = "api_endpoint"
	NodeAIModel         NodeType = "ai_model"
	NodeKnowledgeEntity NodeType = "knowledge_entity"
)

type Graph struct {
	Variant  string `json:"variant"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
	Selected string `json:"selected,omitempty"`
	Stats    *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Type           NodeType `json:"type"`
	X              float64  `json:"x"`
	Y              float64  `json:"y"`
	Connections    []string `json:"connections"`
	Score          float64  `json:"score,omitempty"`
	ProcessingTime int      `json:"processing_time_ms,omitempty"`
	Metadata       Metadata `json:"metadata,omitempty"`
}

type Edge struct {
	Source       string  `json:"source"`
	Target       string  `json:"target"`
	Relationship string  `json:"relationship"`
	Confidence   float64 `json:"confidence,omitempty"`
	Rationale    string  `json:"rationale,omitempty"`
}

type Stats struct {
	TotalNodes      int              `json:"total_nodes"`
	TotalEdges      int              `json:"total_edges"`
	AvgConfidence   float64          `json:"avg_confidence"`
	ProcessingSpeed float64          `json:"processing_speed_ms"`
	KnowledgeDepth  float64          `json:"knowledge_depth"`
	NodesByType     map[NodeType]int `json:"nodes_by_type,omitempty"`
}

// Field is one metadata entry. Metadata keeps insertion order so the side
// panel lists fields the way they were declared.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

type Metadata []Field

func (m Metadata) Get(key string) (any, bool) {
	for _, f := range m {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// FormatValue renders a metadata value for display. Lists are joined with ", ".
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = fmt.Sprintf("%v", f)
		}
		return strings.Join(parts, ", ")
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = FormatValue(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
