package mesh

import (
	"github.com/katalvlaran/qdf/id"
)

// Graph is an undirected, unweighted adjacency store over id.ID nodes.
//
// Neighbor lists are kept in edge-insertion order; that order is observable
// through Neighbors and drives the positional correspondence in Rewire.
// Graph is not safe for concurrent mutation; its owner serializes access.
type Graph struct {
	adj map[id.ID][]id.ID
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adj: make(map[id.ID][]id.ID)}
}

// AddNode ensures v exists, with no edges. Idempotent.
func (g *Graph) AddNode(v id.ID) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// RemoveNode deletes v and every edge incident to it.
func (g *Graph) RemoveNode(v id.ID) {
	for _, n := range g.adj[v] {
		g.adj[n] = splice(g.adj[n], v)
	}
	delete(g.adj, v)
}

// HasNode reports whether v is present.
func (g *Graph) HasNode(v id.ID) bool {
	_, ok := g.adj[v]

	return ok
}

// AddEdge connects a and b symmetrically, creating either node as needed.
// Self-loops and duplicate edges are ignored: the structures built on mesh
// never need them, and silently collapsing them keeps Clique loops simple.
func (g *Graph) AddEdge(a, b id.ID) {
	if a == b || g.HasEdge(a, b) {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

// RemoveEdge disconnects a and b. Missing edges are ignored.
// Survivor order in both lists is preserved.
func (g *Graph) RemoveEdge(a, b id.ID) {
	g.adj[a] = splice(g.adj[a], b)
	g.adj[b] = splice(g.adj[b], a)
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b id.ID) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of v's neighbor list in insertion order,
// or nil if v is absent.
func (g *Graph) Neighbors(v id.ID) []id.ID {
	ns, ok := g.adj[v]
	if !ok {
		return nil
	}
	out := make([]id.ID, len(ns))
	copy(out, ns)

	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v id.ID) int {
	return len(g.adj[v])
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Clique adds every node in ids and connects them pairwise.
func (g *Graph) Clique(ids []id.ID) {
	for _, v := range ids {
		g.AddNode(v)
	}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			g.AddEdge(a, b)
		}
	}
}

// Rewire hands old's adjacency over to children by positional
// correspondence: the i-th current neighbor of old is connected to
// children[i], modeling "this neighbor now touches the facet owned by
// child i". Children beyond the neighbor count receive no external edge;
// a neighbor count exceeding len(children) never occurs in a simplicial
// refinement, but any surplus neighbors are dropped rather than doubled up.
// old itself is deleted from the store — no edgeless husk is left behind.
func (g *Graph) Rewire(old id.ID, children []id.ID) {
	neighbors := g.Neighbors(old)
	for i, n := range neighbors {
		if i >= len(children) {
			break
		}
		g.RemoveEdge(n, old)
		g.AddEdge(n, children[i])
	}
	g.RemoveNode(old)
}

// splice removes the first occurrence of v from list, preserving order.
func splice(list []id.ID, v id.ID) []id.ID {
	for i, n := range list {
		if n == v {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
