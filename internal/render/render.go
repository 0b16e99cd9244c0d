// Package render prints citygraph query results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Renderer writes views to w in one format.
type Renderer struct {
	w       io.Writer
	format  Format
	heading lipgloss.Style
	warning lipgloss.Style
}

// New returns a Renderer for w. Text headings are styled only when w is a terminal.
func New(w io.Writer, format Format) *Renderer {
	lr := lipgloss.NewRenderer(w)

	return &Renderer{
		w:       w,
		format:  format,
		heading: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#874BFD")),
		warning: lr.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

// Vertices prints sorted vertex names.
func (r *Renderer) Vertices(names []string) error {
	if names == nil {
		names = []string{}
	}
	if r.format != Text {
		return r.encode(names)
	}

	r.printf("%s\n", r.heading.Render(fmt.Sprintf("Vertices (%d)", len(names))))
	for _, n := range names {
		r.printf("%s\n", n)
	}

	return nil
}

// Edges prints edges in the order given.
func (r *Renderer) Edges(edges []EdgeView) error {
	if edges == nil {
		edges = []EdgeView{}
	}
	if r.format != Text {
		return r.encode(edges)
	}

	r.printf("%s\n", r.heading.Render(fmt.Sprintf("Edges (%d)", len(edges))))
	r.edgeLines(edges)

	return nil
}

// Distance prints a direct-connection lookup.
func (r *Renderer) Distance(v DistanceView) error {
	if r.format != Text {
		return r.encode(v)
	}
	if !v.Found {
		r.printf("No direct connection between %s and %s.\n", v.From, v.To)
		return nil
	}
	r.printf("Distance between %s and %s: %d km\n", v.From, v.To, *v.Km)

	return nil
}

// Route prints a multi-hop route.
func (r *Renderer) Route(v RouteView) error {
	if r.format != Text {
		return r.encode(v)
	}
	if !v.Found {
		r.printf("No route between %s and %s.\n", v.From, v.To)
		return nil
	}

	r.printf("%s\n", r.heading.Render(fmt.Sprintf("Route %s", strings.Join(v.Vertices, " -> "))))
	r.edgeLines(v.Edges)
	r.printf("Total: %d km in %d hops\n", v.TotalKm, len(v.Edges))

	return nil
}

// MST prints a spanning tree, warning when it does not reach every vertex.
func (r *Renderer) MST(v MSTView) error {
	if v.Edges == nil {
		v.Edges = []EdgeView{}
	}
	if r.format != Text {
		return r.encode(v)
	}

	r.printf("%s\n", r.heading.Render(fmt.Sprintf("Minimum Spanning Tree (%s)", v.Method)))
	r.edgeLines(v.Edges)
	r.printf("Total Weight: %d km\n", v.TotalKm)
	if !v.Spanning {
		reached := len(v.Edges) + 1
		r.printf("%s\n", r.warning.Render(fmt.Sprintf(
			"Warning: graph is disconnected; tree reaches %d of %d vertices.", reached, v.Vertices)))
	}

	return nil
}

// Reach prints the cities reachable from v.From, nearest first.
func (r *Renderer) Reach(v ReachView) error {
	if v.Cities == nil {
		v.Cities = []HopsView{}
	}
	if r.format != Text {
		return r.encode(v)
	}

	title := fmt.Sprintf("Reachable from %s (%d)", v.From, len(v.Cities))
	if v.MaxHops > 0 {
		title = fmt.Sprintf("Reachable from %s within %d hops (%d)", v.From, v.MaxHops, len(v.Cities))
	}
	r.printf("%s\n", r.heading.Render(title))
	for _, c := range v.Cities {
		r.printf("%s : %d hops\n", c.Name, c.Hops)
	}

	return nil
}

// Components prints one line per connected component.
func (r *Renderer) Components(v ComponentsView) error {
	if v.Components == nil {
		v.Components = [][]string{}
	}
	if r.format != Text {
		return r.encode(v)
	}

	r.printf("%s\n", r.heading.Render(fmt.Sprintf("Components (%d)", len(v.Components))))
	for i, c := range v.Components {
		r.printf("%d: %s\n", i+1, strings.Join(c, ", "))
	}

	return nil
}

func (r *Renderer) edgeLines(edges []EdgeView) {
	for _, e := range edges {
		r.printf("%s -> %s : %d km\n", e.From, e.To, e.Km)
	}
}

func (r *Renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("render: json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("render: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("render: yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}

	return nil
}
