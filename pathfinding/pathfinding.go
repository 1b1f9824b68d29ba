package pathfinding

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Pathfinder runs A* searches over a grid of Nodes it owns.
type Pathfinder struct {
	grid *grid.Grid[*Node]
}

// New builds a width×height grid of walkable nodes and a Pathfinder over it.
// Grid options (cell size, origin, axis) only affect world-position mapping.
// Returns the grid package's construction errors unchanged.
func New(width, height int, opts ...grid.Option) (*Pathfinder, error) {
	g, err := grid.New(width, height, newNode, opts...)
	if err != nil {
		return nil, err
	}

	return &Pathfinder{grid: g}, nil
}

// Grid returns the node grid, for observation and world mapping.
func (p *Pathfinder) Grid() *grid.Grid[*Node] {
	return p.grid
}

// Node returns the node at (x,y), or nil and false outside the grid.
func (p *Pathfinder) Node(x, y int) (*Node, bool) {
	return p.grid.Element(x, y)
}

// SetWalkable sets the walkable flag of (x,y).
// Returns grid.ErrOutOfRange for coordinates outside the grid.
func (p *Pathfinder) SetWalkable(x, y int, walkable bool) error {
	n, ok := p.grid.Element(x, y)
	if !ok {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", grid.ErrOutOfRange, x, y, p.grid.Width(), p.grid.Height())
	}
	n.SetWalkable(walkable)

	return nil
}

// Neighbors returns the up to 8 nodes adjacent to n, clipped to the grid:
// 3 for a corner, 5 for an edge cell, 8 for an interior cell.
func (p *Pathfinder) Neighbors(n *Node) []*Node {
	out := make([]*Node, 0, len(offsets))
	for _, d := range offsets {
		if nb, ok := p.grid.Element(n.x+d[0], n.y+d[1]); ok {
			out = append(out, nb)
		}
	}

	return out
}

// Cost returns the movement cost between a and b. See DistanceCost.
func (p *Pathfinder) Cost(a, b *Node) int {
	return Cost(a, b)
}

// FindPath searches for a minimum-cost path from (startX,startY) to
// (endX,endY) and returns its nodes in start→end order.
//
// Returns:
//
//   - ErrOutOfBounds if either endpoint is outside the grid. Node state is
//     left untouched in this case.
//   - ErrNoPath if every reachable node was expanded without reaching the end.
//
// After the call each node's costs and predecessor describe the search that
// just ran; the next call resets them.
//
// Complexity: O(W·H·log(W·H)) time, O(W·H) memory.
func (p *Pathfinder) FindPath(startX, startY, endX, endY int) ([]*Node, error) {
	start, ok := p.grid.Element(startX, startY)
	if !ok {
		opsf("FindPath: start (%d,%d) outside %dx%d grid", startX, startY, p.grid.Width(), p.grid.Height())
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, startX, startY)
	}
	end, ok := p.grid.Element(endX, endY)
	if !ok {
		opsf("FindPath: end (%d,%d) outside %dx%d grid", endX, endY, p.grid.Width(), p.grid.Height())
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, endX, endY)
	}

	p.reset()

	r := &runner{
		p:       p,
		end:     end,
		entries: make([]*openEntry, p.grid.Len()),
		closed:  make([]bool, p.grid.Len()),
	}
	path := r.run(start)
	if path == nil {
		diagf("FindPath (%d,%d)->(%d,%d): no path, expanded=%d", startX, startY, endX, endY, r.expanded)
		return nil, fmt.Errorf("%w: (%d,%d)->(%d,%d)", ErrNoPath, startX, startY, endX, endY)
	}
	diagf("FindPath (%d,%d)->(%d,%d): cost=%d nodes=%d expanded=%d",
		startX, startY, endX, endY, end.gCost, len(path), r.expanded)

	return path, nil
}

// reset returns every node to its pre-search state.
func (p *Pathfinder) reset() {
	p.grid.Each(func(_, _ int, n *Node) {
		n.reset()
	})
}

// runner holds the state of a single FindPath call.
type runner struct {
	p        *Pathfinder
	end      *Node
	open     openPQ       // candidates ordered by (fCost, seq)
	entries  []*openEntry // by cell index; non-nil once a node entered the open set
	closed   []bool       // by cell index
	seq      int          // next insertion sequence number
	expanded int
}

// run executes the search loop and returns the path, or nil when the open
// set is exhausted.
func (r *runner) run(start *Node) []*Node {
	start.relax(nil, 0, Cost(start, r.end))
	r.push(start)

	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*openEntry).node
		if cur == r.end {
			return reconstruct(cur)
		}
		r.closed[r.index(cur)] = true
		r.expanded++
		tracef("expand (%d,%d) g=%d f=%d open=%d", cur.x, cur.y, cur.gCost, cur.fCost, r.open.Len())

		for _, nb := range r.p.Neighbors(cur) {
			i := r.index(nb)
			if r.closed[i] {
				continue
			}
			if !nb.walkable {
				r.closed[i] = true
				continue
			}
			g := cur.gCost + Cost(cur, nb)
			if g >= nb.gCost {
				continue
			}
			nb.relax(cur, g, Cost(nb, r.end))
			if e := r.entries[i]; e != nil {
				heap.Fix(&r.open, e.heapIndex)
			} else {
				r.push(nb)
			}
		}
	}

	return nil
}

func (r *runner) push(n *Node) {
	e := &openEntry{node: n, seq: r.seq}
	r.seq++
	r.entries[r.index(n)] = e
	heap.Push(&r.open, e)
}

func (r *runner) index(n *Node) int {
	return r.p.grid.Index(n.x, n.y)
}

// reconstruct walks predecessors from end back to the start and returns
// them in start→end order.
func reconstruct(end *Node) []*Node {
	var path []*Node
	for n := end; n != nil; n = n.prev {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openEntry is a node in the open set. seq records when the node first
// entered the set and breaks f-cost ties in favor of older entries.
type openEntry struct {
	node      *Node
	seq       int
	heapIndex int
}

// openPQ is a min-heap of *openEntry ordered by (node.fCost, seq).
type openPQ []*openEntry

// Len returns the number of entries in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f-cost, then by insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	fi, fj := pq[i].node.fCost, pq[j].node.fCost
	if fi != fj {
		return fi < fj
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries and keeps their heap indices current.
func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIndex = i
	pq[j].heapIndex = j
}

// Push appends x, which must be an *openEntry.
func (pq *openPQ) Push(x interface{}) {
	e := x.(*openEntry)
	e.heapIndex = len(*pq)
	*pq = append(*pq, e)
}

// Pop removes and returns the last entry.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.heapIndex = -1
	*pq = old[:n-1]

	return e
}
