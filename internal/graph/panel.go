package graph

import "github.com/mosdac/assistant/internal/models"

type Direction string

const (
	Outgoing Direction = "→"
	Incoming Direction = "←"
)

// Relationship is one edge as seen from the selected node.
type Relationship struct {
	Direction    Direction `json:"direction"`
	Relationship string    `json:"relationship"`
	OtherID      string    `json:"other_id"`
	OtherLabel   string    `json:"other_label"`
	Confidence   float64   `json:"confidence,omitempty"`
	Rationale    string    `json:"rationale,omitempty"`
}

// Line renders the relationship the way the side panel prints it, e.g.
// "→ generates → Weather Data".
func (r Relationship) Line() string {
	return string(r.Direction) + " " + r.Relationship + " " + string(r.Direction) + " " + r.OtherLabel
}

type PanelField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Panel is the side panel content for a selected node.
type Panel struct {
	Node            models.Node    `json:"node"`
	ConnectionCount int            `json:"connection_count"`
	Fields          []PanelField   `json:"fields"`
	Connections     []models.Node  `json:"connections"`
	Relationships   []Relationship `json:"relationships"`
}

// SelectedPanel builds the panel for the current selection.
func (v *View) SelectedPanel() (Panel, bool) {
	v.mu.RLock()
	id := v.selected
	v.mu.RUnlock()

	if id == "" {
		return Panel{}, false
	}
	p, err := v.Panel(id)
	if err != nil {
		return Panel{}, false
	}
	return p, true
}

// Panel lists a node's metadata in insertion order, its resolvable
// connections, and every edge touching it.
func (v *View) Panel(id string) (Panel, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	node, ok := findNode(v.nodes, id)
	if !ok {
		return Panel{}, ErrNodeNotFound
	}

	p := Panel{
		Node:            node,
		ConnectionCount: len(node.Connections),
		Fields:          make([]PanelField, 0, len(node.Metadata)),
		Connections:     []models.Node{},
		Relationships:   []Relationship{},
	}

	for _, fld := range node.Metadata {
		p.Fields = append(p.Fields, PanelField{Key: fld.Key, Value: models.FormatValue(fld.Value)})
	}

	for _, c := range node.Connections {
		if n, ok := findNode(v.nodes, c); ok {
			p.Connections = append(p.Connections, n)
		}
	}

	for _, e := range v.edges {
		var rel Relationship
		switch id {
		case e.Source:
			rel = Relationship{Direction: Outgoing, OtherID: e.Target}
		case e.Target:
			rel = Relationship{Direction: Incoming, OtherID: e.Source}
		default:
			continue
		}
		rel.Relationship = e.Relationship
		rel.Confidence = e.Confidence
		rel.Rationale = e.Rationale
		if other, ok := findNode(v.nodes, rel.OtherID); ok {
			rel.OtherLabel = other.Label
		}
		p.Relationships = append(p.Relationships, rel)
	}

	return p, nil
}
