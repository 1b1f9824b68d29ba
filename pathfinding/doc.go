// Package pathfinding implements A* search over a grid.Grid of path nodes.
//
// Overview:
//
//   - A Pathfinder owns one grid.Grid[*Node]; every cell holds a Node with a
//     walkable flag and per-search cost state (g, h, f, predecessor).
//   - FindPath runs a best-first search between two cells over the
//     8-connected neighborhood and returns the nodes from start to end.
//   - Movement costs 10 per straight step and 14 per diagonal step. The same
//     octile distance serves as the heuristic, so it never overestimates and
//     the returned path has minimum total cost.
//
// Behavior worth knowing:
//
//   - Nodes are reused across searches. Every FindPath call first resets all
//     costs to Infinity and predecessors to nil (a full grid pass).
//   - Among open nodes with equal f-cost, the one that entered the open set
//     first is expanded first.
//   - The start node is expanded even when it is not walkable; walkability
//     is only checked for neighbors.
//   - Diagonal moves are allowed between two blocked orthogonal cells
//     (no corner-cutting restriction).
//
// Errors:
//
//   - ErrOutOfBounds: start or end lies outside the grid.
//   - ErrNoPath:      the open set was exhausted without reaching the end.
//
// Complexity:
//
//   - FindPath: O(W·H·log(W·H)) time, O(W·H) memory.
//
// Concurrency:
//
//	A Pathfinder is single-writer. FindPath mutates the cost state of every
//	node; concurrent searches, or a search interleaved with SetWalkable, on
//	the same Pathfinder corrupt that state. No locking is provided.
package pathfinding
