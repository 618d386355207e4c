package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mosdac/assistant/internal/graph"
	"github.com/mosdac/assistant/internal/render"
)

func parsePoint(s string) (graph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return graph.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graph.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graph.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return graph.Point{X: x, Y: y}, nil
}

func newRenderCmd() *cobra.Command {
	var (
		variant string
		format  string
		out     string
		sel     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a knowledge graph to PNG or SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := graph.ParseVariant(variant)
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			view, err := graph.NewView(v)
			if err != nil {
				return err
			}
			if sel != "" {
				p, err := parsePoint(sel)
				if err != nil {
					return err
				}
				view.Click(p)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer file.Close()
				w = file
			}

			return render.Render(w, f, view.Snapshot())
		},
	}
	cmd.Flags().StringVar(&variant, "variant", string(graph.VariantClassic), "graph variant: classic or ai")
	cmd.Flags().StringVar(&format, "format", string(render.FormatPNG), "output format: png or svg")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&sel, "select", "", "select the node at x,y before drawing")
	return cmd
}
