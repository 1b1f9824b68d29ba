package pathfinding

// DistanceCost returns the octile distance between (ax,ay) and (bx,by):
// DiagonalCost per diagonal step plus StraightCost per remaining straight
// step. It is both the heuristic and the cost of a single move.
func DistanceCost(ax, ay, bx, by int) int {
	dx, dy := abs(ax-bx), abs(ay-by)

	return DiagonalCost*min(dx, dy) + StraightCost*abs(dx-dy)
}

// Cost returns DistanceCost between two nodes.
func Cost(a, b *Node) int {
	return DistanceCost(a.x, a.y, b.x, b.y)
}

// PathCost sums Cost over consecutive nodes of path.
// For a path returned by FindPath it equals the end node's GCost.
func PathCost(path []*Node) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += Cost(path[i-1], path[i])
	}

	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
