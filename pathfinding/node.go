package pathfinding

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Node is the per-cell state of the search grid.
//
// Costs are meaningful only after a FindPath call reached the node;
// otherwise they hold Infinity and Previous is nil. Every mutation reports
// the node's cell to the owning grid's observers.
type Node struct {
	x, y     int
	notifier grid.Notifier // non-owning; used only to report changes

	walkable bool

	gCost int   // cost of the best known path from start
	hCost int   // heuristic estimate to the end
	fCost int   // gCost + hCost, recomputed by CalculateFCost
	prev  *Node // predecessor on the best known path
}

// newNode is the grid.Factory for path nodes.
func newNode(n grid.Notifier, x, y int) *Node {
	return &Node{
		x:        x,
		y:        y,
		notifier: n,
		walkable: true,
		gCost:    Infinity,
		hCost:    Infinity,
		fCost:    Infinity,
	}
}

// X returns the node's column.
func (n *Node) X() int { return n.x }

// Y returns the node's row.
func (n *Node) Y() int { return n.y }

// Walkable reports whether the node may be entered during search.
func (n *Node) Walkable() bool { return n.walkable }

// GCost returns the accumulated cost from the start of the last search.
func (n *Node) GCost() int { return n.gCost }

// HCost returns the heuristic estimate to the end of the last search.
func (n *Node) HCost() int { return n.hCost }

// FCost returns GCost + HCost as of the last CalculateFCost.
func (n *Node) FCost() int { return n.fCost }

// Previous returns the predecessor on the best known path, or nil.
func (n *Node) Previous() *Node { return n.prev }

// Valid reports whether the last search assigned the node a cost.
func (n *Node) Valid() bool { return n.hCost < Infinity }

// SetWalkable sets the walkable flag and notifies observers.
func (n *Node) SetWalkable(walkable bool) {
	n.walkable = walkable
	n.changed()
}

// CalculateFCost recomputes FCost from GCost and HCost.
// If either operand is Infinity the result is Infinity.
func (n *Node) CalculateFCost() {
	if n.gCost == Infinity || n.hCost == Infinity {
		n.fCost = Infinity
	} else {
		n.fCost = n.gCost + n.hCost
	}
	n.changed()
}

// String renders the node as "*" when blocked, "" when it carries no cost,
// or "g + h = f".
func (n *Node) String() string {
	if !n.walkable {
		return "*"
	}
	if !n.Valid() {
		return ""
	}

	return fmt.Sprintf("%d + %d = %d", n.gCost, n.hCost, n.fCost)
}

// reset restores the pre-search state.
func (n *Node) reset() {
	n.gCost, n.hCost, n.fCost = Infinity, Infinity, Infinity
	n.prev = nil
	n.changed()
}

// relax records a better path through prev with cost g and estimate h.
func (n *Node) relax(prev *Node, g, h int) {
	n.prev = prev
	n.gCost = g
	n.hCost = h
	n.CalculateFCost()
}

func (n *Node) changed() {
	if n.notifier != nil {
		n.notifier.TriggerChanged(n.x, n.y)
	}
}
