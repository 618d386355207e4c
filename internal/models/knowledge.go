// Package models defines the core data structures shared by the assistant:
// knowledge base records, graph nodes and edges, and chat transcript entries.
package models

// EntityKind distinguishes the variants of Entity.
type EntityKind string

const (
	KindMission    EntityKind = "mission"
	KindLocation   EntityKind = "location"
	KindDataFormat EntityKind = "data_format"
)

// Entity is the closed union of knowledge base records. Only Mission,
// Location and DataFormat implement it.
type Entity interface {
	EntityKey() string
	Kind() EntityKind
	isEntity()
}

type Mission struct {
	Key          string   `json:"key" yaml:"key"`
	Description  string   `json:"description" yaml:"description"`
	Products     []string `json:"products" yaml:"products"`
	Resolution   string   `json:"resolution" yaml:"resolution"`
	Coverage     string   `json:"coverage" yaml:"coverage"`
	Sensors      []string `json:"sensors" yaml:"sensors"`
	LaunchYears  []string `json:"launch_years" yaml:"launch_years"`
	Applications []string `json:"applications" yaml:"applications"`
}

type Location struct {
	Key      string  `json:"key" yaml:"key"`
	Lat      float64 `json:"lat" yaml:"lat"`
	Lon      float64 `json:"lon" yaml:"lon"`
	Region   string  `json:"region" yaml:"region"`
	Coverage string  `json:"coverage" yaml:"coverage"`
}

type DataFormat struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
	UseCase     string `json:"use_case" yaml:"use_case"`
	Size        string `json:"size" yaml:"size"`
}

func (m Mission) EntityKey() string    { return m.Key }
func (m Mission) Kind() EntityKind     { return KindMission }
func (Mission) isEntity()              {}
func (l Location) EntityKey() string   { return l.Key }
func (l Location) Kind() EntityKind    { return KindLocation }
func (Location) isEntity()             {}
func (d DataFormat) EntityKey() string { return d.Key }
func (d DataFormat) Kind() EntityKind  { return KindDataFormat }
func (DataFormat) isEntity()           {}

// Document is a retrievable text derived from a knowledge base record.
type Document struct {
	ID     string     `json:"id"`
	Text   string     `json:"text"`
	Type   EntityKind `json:"type"`
	Entity string     `json:"entity"`
}

// Hit is a retrieved document with its relevance score in [0,1].
type Hit struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}

// Source renders the hit as "<type>: <entity>".
func (h Hit) Source() string {
	return string(h.Document.Type) + ": " + h.Document.Entity
}
