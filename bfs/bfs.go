package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// queueItem pairs a city with its hop count.
type queueItem struct {
	name string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    core.Snapshot
	inc     map[string][]int
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := g.Snapshot()
	w := newWalker(s, s.Incidence(), o)
	if !w.known(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Components partitions g into connected components. Components are ordered
// by their earliest-inserted city, and each lists its cities in BFS order.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := g.Snapshot()
	inc := s.Incidence()
	seen := make(map[string]bool, len(s.Vertices))

	var out [][]string
	for _, v := range s.Vertices {
		if seen[v] {
			continue
		}
		w := newWalker(s, inc, DefaultOptions())
		w.enqueue(v, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		for _, name := range w.res.Order {
			seen[name] = true
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

func newWalker(s core.Snapshot, inc map[string][]int, o BFSOptions) *walker {
	n := len(s.Vertices)

	return &walker{
		snap:    s,
		inc:     inc,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

func (w *walker) known(name string) bool {
	for _, v := range w.snap.Vertices {
		if v == name {
			return true
		}
	}

	return false
}

// enqueue marks name visited at hop h, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(name string, h int, parent string) {
	w.visited[name] = true
	w.res.Hops[name] = h
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, hops: h})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxHops and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.hops + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return
	}
	for _, idx := range w.inc[item.name] {
		nbr := w.snap.Edges[idx].Other(item.name)
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.name)
		}
	}
}
