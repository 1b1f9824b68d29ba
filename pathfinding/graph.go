package pathfinding

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// ID returns the gonum node ID of n: its row-major cell index.
func (p *Pathfinder) ID(n *Node) int64 {
	return int64(p.grid.Index(n.x, n.y))
}

// NodeByID is the inverse of ID.
func (p *Pathfinder) NodeByID(id int64) (*Node, bool) {
	if id < 0 || id >= int64(p.grid.Len()) {
		return nil, false
	}
	x, y := p.grid.Coordinate(int(id))

	return p.grid.Element(x, y)
}

// WeightedGraph exports the current walkability state as a directed gonum
// graph. Every cell becomes a node with ID(n); an edge u→v of weight
// Cost(u,v) exists for each neighbor v of u that is walkable. Edges leave
// blocked cells too, matching FindPath's treatment of a blocked start.
// Complexity: O(W·H) time and memory.
func (p *Pathfinder) WeightedGraph() *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < p.grid.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	p.grid.Each(func(_, _ int, u *Node) {
		from := simple.Node(p.ID(u))
		for _, v := range p.Neighbors(u) {
			if !v.walkable {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(from, simple.Node(p.ID(v)), float64(Cost(u, v))))
		}
	})

	return g
}
