package pathfinding

import "strings"

// Render draws the grid as text, top row (y = Height-1) first:
// '#' for blocked cells, '*' for cells in highlight, '.' otherwise.
func (p *Pathfinder) Render(highlight []*Node) string {
	w, h := p.grid.Width(), p.grid.Height()
	marked := make([]bool, p.grid.Len())
	for _, n := range highlight {
		if n != nil {
			marked[p.grid.Index(n.x, n.y)] = true
		}
	}

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			n, _ := p.grid.Element(x, y)
			switch {
			case !n.walkable:
				sb.WriteByte('#')
			case marked[p.grid.Index(x, y)]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
