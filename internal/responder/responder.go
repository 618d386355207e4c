// Package responder selects and fills the canned response templates for a
// classified query.
package responder

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/mosdac/assistant/internal/knowledge"
	"github.com/mosdac/assistant/internal/models"
)

// Rand is the random source used to pick between alternative paragraphs.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type Responder struct {
	kb   *knowledge.Base
	rnd  Rand
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"join":  strings.Join,
	"coord": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
}

func New(kb *knowledge.Base, rnd Rand) *Responder {
	if kb == nil {
		kb = knowledge.Default()
	}
	tmpl := template.Must(template.New("responses").Funcs(funcs).Parse(
		missionTmpl + missionFallbackTmpl + geospatialTmpl + geospatialFallbackTmpl +
			downloadTmpl + technicalTmpl + generalTmpl))

	return &Responder{kb: kb, rnd: rnd, tmpl: tmpl}
}

// Respond renders the template family for queryType. Document queries share
// the general family.
func (r *Responder) Respond(query string, queryType models.QueryType, entities []string, hits []models.Hit) (string, error) {
	switch queryType {
	case models.QueryMetadata:
		m, ok := r.firstMission(entities)
		if !ok {
			return r.render("mission_fallback", map[string]any{"Missions": r.kb.Missions()})
		}
		return r.render("mission", map[string]any{"Mission": m, "Related": related(hits, m.Key)})

	case models.QueryGeospatial:
		l, ok := r.firstLocation(entities)
		if !ok {
			return r.render("geospatial_fallback", nil)
		}
		var missions []string
		for _, h := range hits {
			if h.Document.Type == models.KindMission {
				missions = append(missions, h.Document.Entity)
			}
		}
		return r.render("geospatial", map[string]any{"Location": l, "Missions": missions})

	case models.QueryDownload:
		data := map[string]any{"Mission": nil}
		if m, ok := r.firstMission(entities); ok {
			data["Mission"] = m
		}
		return r.render("download", data)

	case models.QueryTechnical:
		data := map[string]any{"Mission": nil}
		if m, ok := r.firstMission(entities); ok {
			data["Mission"] = m
		}
		return r.render("technical", data)

	default:
		intro := generalIntros[r.pick(len(generalIntros))]
		return r.render("general", map[string]any{
			"Intro":   fmt.Sprintf(intro, query),
			"Related": related(hits, ""),
		})
	}
}

func (r *Responder) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s response: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Responder) pick(n int) int {
	if r.rnd == nil || n <= 1 {
		return 0
	}
	return r.rnd.IntN(n)
}

func (r *Responder) firstMission(entities []string) (models.Mission, bool) {
	for _, e := range entities {
		if ent, ok := r.kb.Lookup(e); ok {
			if m, ok := ent.(models.Mission); ok {
				return m, true
			}
		}
	}
	return models.Mission{}, false
}

func (r *Responder) firstLocation(entities []string) (models.Location, bool) {
	for _, e := range entities {
		if ent, ok := r.kb.Lookup(e); ok {
			if l, ok := ent.(models.Location); ok {
				return l, true
			}
		}
	}
	return models.Location{}, false
}

func related(hits []models.Hit, skip string) []string {
	var out []string
	for _, h := range hits {
		if h.Document.Entity == skip || h.Score <= 0 {
			continue
		}
		out = append(out, h.Source())
	}
	return out
}
