package dashboard

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/mosdac/assistant/internal/models"
)

//go:embed showcase.yaml
var showcaseYAML []byte

type Feature struct {
	ID           string          `json:"id" yaml:"id"`
	Title        string          `json:"title" yaml:"title"`
	Description  string          `json:"description" yaml:"description"`
	Technologies []string        `json:"technologies" yaml:"technologies"`
	Capabilities []string        `json:"capabilities" yaml:"capabilities"`
	Metrics      models.Metadata `json:"metrics" yaml:"metrics"`
}

type Technology struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type StackCategory struct {
	Category     string       `json:"category" yaml:"category"`
	Technologies []Technology `json:"technologies" yaml:"technologies"`
}

type DeploymentFeature struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
}

// Catalog is the static feature showcase.
type Catalog struct {
	CoreFeatures   []Feature           `json:"core_features" yaml:"core_features"`
	TechnicalStack []StackCategory     `json:"technical_stack" yaml:"technical_stack"`
	Deployment     []DeploymentFeature `json:"deployment" yaml:"deployment"`
}

// Feature looks up a core feature by id.
func (c *Catalog) Feature(id string) (Feature, bool) {
	for _, f := range c.CoreFeatures {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal showcase: %w", err)
	}
	if len(c.CoreFeatures) == 0 {
		return nil, fmt.Errorf("showcase has no core features")
	}
	return &c, nil
}

var (
	showcaseOnce sync.Once
	showcase     *Catalog
)

// Showcase returns the embedded catalog.
func Showcase() *Catalog {
	showcaseOnce.Do(func() {
		c, err := ParseCatalog(showcaseYAML)
		if err != nil {
			panic(err)
		}
		showcase = c
	})
	return showcase
}
