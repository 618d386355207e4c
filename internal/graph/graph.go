// Package graph holds the node/edge models behind the two knowledge graph
// panels and resolves pointer clicks to node selections.
package graph

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/mosdac/assistant/internal/models"
)

type Variant string

const (
	// VariantClassic is the plain knowledge graph: missions, data, locations,
	// documents and user queries.
	VariantClassic Variant = "classic"
	// VariantAI is the scored graph with edge confidences and rationales.
	VariantAI Variant = "ai"
)

var (
	ErrUnknownVariant = errors.New("unknown graph variant")
	ErrNodeNotFound   = errors.New("node not found")
)

// Variants lists every known variant.
var Variants = []Variant{VariantClassic, VariantAI}

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Radius is the hit-test radius for the variant.
func (v Variant) Radius() float64 {
	if v == VariantAI {
		return 35
	}
	return 30
}

func dataset(v Variant) ([]models.Node, []models.Edge) {
	if v == VariantAI {
		return aiNodes(), aiEdges()
	}
	return classicNodes(), classicEdges()
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// View is one graph panel: its nodes, edges and the selected node id.
// Nodes and edges change only through Refresh, which replaces both.
type View struct {
	mu       sync.RWMutex
	variant  Variant
	nodes    []models.Node
	edges    []models.Edge
	selected string
	stats    models.Stats
}

func NewView(v Variant) (*View, error) {
	if _, err := ParseVariant(string(v)); err != nil {
		return nil, err
	}
	view := &View{variant: v}
	view.Refresh()
	return view, nil
}

func (v *View) Variant() Variant { return v.variant }

// Refresh reloads the fixed dataset, recomputes the metrics and clears the
// selection.
func (v *View) Refresh() {
	nodes, edges := dataset(v.variant)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.nodes = nodes
	v.edges = edges
	v.selected = ""
	v.stats = computeStats(nodes, edges)
}

// HitTest returns the first node, in list order, whose centre lies within
// the variant radius of p.
func (v *View) HitTest(p Point) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return hitTest(v.nodes, p, v.variant.Radius())
}

func hitTest(nodes []models.Node, p Point, radius float64) (string, bool) {
	for _, n := range nodes {
		if math.Hypot(p.X-n.X, p.Y-n.Y) <= radius {
			return n.ID, true
		}
	}
	return "", false
}

// Click selects the node under p, or clears the selection when there is
// none. It returns the new selection.
func (v *View) Click(p Point) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id, ok := hitTest(v.nodes, p, v.variant.Radius())
	v.selected = id
	return id, ok
}

// Select sets the selection by id. An empty id clears it.
func (v *View) Select(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if id == "" {
		v.selected = ""
		return nil
	}
	if _, ok := findNode(v.nodes, id); !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	v.selected = id
	return nil
}

func (v *View) Selected() (models.Node, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.selected == "" {
		return models.Node{}, false
	}
	return findNode(v.nodes, v.selected)
}

// Snapshot copies the current state.
func (v *View) Snapshot() models.Graph {
	v.mu.RLock()
	defer v.mu.RUnlock()

	nodes := make([]models.Node, len(v.nodes))
	copy(nodes, v.nodes)
	edges := make([]models.Edge, len(v.edges))
	copy(edges, v.edges)
	stats := v.stats

	return models.Graph{
		Variant:  string(v.variant),
		Nodes:    nodes,
		Edges:    edges,
		Selected: v.selected,
		Stats:    &stats,
	}
}

func (v *View) Stats() models.Stats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}

// Validate checks that every edge endpoint names a node of this graph.
func (v *View) Validate() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return validate(v.nodes, v.edges)
}

func validate(nodes []models.Node, edges []models.Edge) error {
	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}
	for i, e := range edges {
		if !ids[e.Source] {
			return fmt.Errorf("edge %d: source %q: %w", i, e.Source, ErrNodeNotFound)
		}
		if !ids[e.Target] {
			return fmt.Errorf("edge %d: target %q: %w", i, e.Target, ErrNodeNotFound)
		}
	}
	return nil
}

func findNode(nodes []models.Node, id string) (models.Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Node{}, false
}

func computeStats(nodes []models.Node, edges []models.Edge) models.Stats {
	s := models.Stats{
		TotalNodes:  len(nodes),
		TotalEdges:  len(edges),
		NodesByType: make(map[models.NodeType]int),
	}

	for _, n := range nodes {
		s.NodesByType[n.Type]++
	}

	if len(edges) > 0 {
		conf := make([]float64, len(edges))
		for i, e := range edges {
			conf[i] = e.Confidence
		}
		s.AvgConfidence = stat.Mean(conf, nil)
	}

	if len(nodes) > 0 {
		times := make([]float64, len(nodes))
		for i, n := range nodes {
			times[i] = float64(n.ProcessingTime)
		}
		s.ProcessingSpeed = stat.Mean(times, nil)
		s.KnowledgeDepth = float64(len(edges)) / float64(len(nodes))
	}

	return s
}
