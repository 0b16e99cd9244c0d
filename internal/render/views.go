package render

import "github.com/katalvlaran/citygraph/core"

// EdgeView is the serialized form of one connection.
type EdgeView struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Km   int64  `json:"km" yaml:"km"`
}

// EdgeViews converts store edges, keeping their order.
func EdgeViews(edges []core.Edge) []EdgeView {
	out := make([]EdgeView, len(edges))
	for i, e := range edges {
		out[i] = EdgeView{From: e.From, To: e.To, Km: e.Weight}
	}

	return out
}

// DistanceView is the result of a direct-connection lookup.
type DistanceView struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Found bool   `json:"found" yaml:"found"`
	Km    *int64 `json:"km,omitempty" yaml:"km,omitempty"`
}

// NewDistanceView builds a DistanceView; km is dropped when found is false.
func NewDistanceView(from, to string, km int64, found bool) DistanceView {
	v := DistanceView{From: from, To: to, Found: found}
	if found {
		v.Km = &km
	}

	return v
}

// RouteView is a multi-hop route, or its absence.
type RouteView struct {
	From     string     `json:"from" yaml:"from"`
	To       string     `json:"to" yaml:"to"`
	Found    bool       `json:"found" yaml:"found"`
	Vertices []string   `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges    []EdgeView `json:"edges,omitempty" yaml:"edges,omitempty"`
	TotalKm  int64      `json:"total_km" yaml:"total_km"`
}

// MSTView is a computed spanning tree.
type MSTView struct {
	Method   string     `json:"method" yaml:"method"`
	Edges    []EdgeView `json:"edges" yaml:"edges"`
	TotalKm  int64      `json:"total_km" yaml:"total_km"`
	Vertices int        `json:"vertices" yaml:"vertices"`
	Spanning bool       `json:"spanning" yaml:"spanning"`
}

// ReachView lists the cities reachable from a start city with their hop counts.
type ReachView struct {
	From    string     `json:"from" yaml:"from"`
	MaxHops int        `json:"max_hops,omitempty" yaml:"max_hops,omitempty"`
	Cities  []HopsView `json:"cities" yaml:"cities"`
}

// HopsView is one reachable city.
type HopsView struct {
	Name string `json:"name" yaml:"name"`
	Hops int    `json:"hops" yaml:"hops"`
}

// ComponentsView is the connected-component partition of a graph.
type ComponentsView struct {
	Components [][]string `json:"components" yaml:"components"`
}
