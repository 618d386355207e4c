// Package knowledge holds the static reference tables (missions, locations and
// data formats) the assistant answers from. The tables are compiled into the
// binary and decoded once; callers only ever read them.
package knowledge

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mosdac/assistant/internal/models"
)

//go:embed knowledge.yaml
var defaultData []byte

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Base is an immutable, ordered view over the reference tables. Iteration
// order is the declaration order of the source document.
type Base struct {
	missions  []models.Mission
	locations []models.Location
	formats   []models.DataFormat

	byKey map[string]models.Entity
}

type document struct {
	Missions    []models.Mission    `yaml:"missions"`
	Locations   []models.Location   `yaml:"locations"`
	DataFormats []models.DataFormat `yaml:"data_formats"`
}

// Default returns the compiled-in knowledge base.
func Default() *Base {
	defaultOnce.Do(func() {
		b, err := Parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("knowledge: embedded tables are invalid: %v", err))
		}
		defaultBase = b
	})
	return defaultBase
}

// Parse decodes a YAML knowledge base document.
func Parse(data []byte) (*Base, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty knowledge base data")
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal knowledge base: %w", err)
	}

	return New(doc.Missions, doc.Locations, doc.DataFormats)
}

// New builds a Base from explicit tables. Keys must be unique across all
// tables and non-empty.
func New(missions []models.Mission, locations []models.Location, formats []models.DataFormat) (*Base, error) {
	b := &Base{
		missions:  missions,
		locations: locations,
		formats:   formats,
		byKey:     make(map[string]models.Entity, len(missions)+len(locations)+len(formats)),
	}

	add := func(e models.Entity) error {
		key := e.EntityKey()
		if key == "" {
			return fmt.Errorf("invalid knowledge base: %s entry with empty key", e.Kind())
		}
		if _, dup := b.byKey[key]; dup {
			return fmt.Errorf("invalid knowledge base: duplicate key %q", key)
		}
		b.byKey[key] = e
		return nil
	}

	for _, m := range missions {
		if err := add(m); err != nil {
			return nil, err
		}
	}
	for _, l := range locations {
		if err := add(l); err != nil {
			return nil, err
		}
	}
	for _, f := range formats {
		if err := add(f); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Base) Missions() []models.Mission       { return b.missions }
func (b *Base) Locations() []models.Location     { return b.locations }
func (b *Base) DataFormats() []models.DataFormat { return b.formats }

// MissionKeys returns mission keys in table order.
func (b *Base) MissionKeys() []string {
	keys := make([]string, len(b.missions))
	for i, m := range b.missions {
		keys[i] = m.Key
	}
	return keys
}

// LocationKeys returns location keys in table order.
func (b *Base) LocationKeys() []string {
	keys := make([]string, len(b.locations))
	for i, l := range b.locations {
		keys[i] = l.Key
	}
	return keys
}

// DataFormatKeys returns data format keys in table order.
func (b *Base) DataFormatKeys() []string {
	keys := make([]string, len(b.formats))
	for i, f := range b.formats {
		keys[i] = f.Key
	}
	return keys
}

// Lookup finds the record stored under key. Keys are case sensitive.
func (b *Base) Lookup(key string) (models.Entity, bool) {
	e, ok := b.byKey[key]
	return e, ok
}

// IsSpecific reports whether key names a mission or a location.
func (b *Base) IsSpecific(key string) bool {
	e, ok := b.byKey[key]
	if !ok {
		return false
	}
	return e.Kind() == models.KindMission || e.Kind() == models.KindLocation
}

// Documents flattens the mission and location tables into retrievable
// documents. Ids share one running counter: mission_0..mission_3, location_4...
func (b *Base) Documents() []models.Document {
	docs := make([]models.Document, 0, len(b.missions)+len(b.locations))
	n := 0

	for _, m := range b.missions {
		docs = append(docs, models.Document{
			ID: fmt.Sprintf("mission_%d", n),
			Text: fmt.Sprintf("%s: %s. Products: %s. Applications: %s.",
				m.Key, m.Description, strings.Join(m.Products, ", "), strings.Join(m.Applications, ", ")),
			Type:   models.KindMission,
			Entity: m.Key,
		})
		n++
	}

	for _, l := range b.locations {
		docs = append(docs, models.Document{
			ID: fmt.Sprintf("location_%d", n),
			Text: fmt.Sprintf("%s is located at %s°N, %s°E in %s. Coverage: %s.",
				l.Key, formatCoord(l.Lat), formatCoord(l.Lon), l.Region, l.Coverage),
			Type:   models.KindLocation,
			Entity: l.Key,
		})
		n++
	}

	return docs
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
