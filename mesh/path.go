package mesh

import (
	"github.com/katalvlaran/qdf/id"
)

// ShortestPath returns a fewest-hop path from `from` to `to`, both
// endpoints included. All edges cost one hop, so plain breadth-first
// search is optimal. Returns [from] when from == to and from is present,
// and nil when either endpoint is absent or no path exists.
//
// Neighbor expansion follows insertion order, so ties between equal-length
// paths resolve deterministically.
func (g *Graph) ShortestPath(from, to id.ID) []id.ID {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}
	if from == to {
		return []id.ID{from}
	}

	queue := []id.ID{from}
	parent := map[id.ID]id.ID{from: id.Nil}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return g.assemble(parent, to)
		}
		for _, n := range g.adj[cur] {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			queue = append(queue, n)
		}
	}

	return nil
}

// assemble walks the parent links back from dest and reverses them into a
// from→dest path.
func (g *Graph) assemble(parents map[id.ID]id.ID, dest id.ID) []id.ID {
	var path []id.ID
	for cur := dest; !cur.IsNil(); cur = parents[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
