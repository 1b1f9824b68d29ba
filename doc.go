// Package gridpath is a grid-indexed pathfinding toolkit: a generic 2D
// container with world-space mapping and change observation, and an A*
// search engine that runs over it.
//
// Packages:
//
//	grid/         Grid[T]: fixed-size 2D storage, world ↔ cell mapping, observers
//	pathfinding/  Pathfinder: A* over a grid of walkable nodes (octile costs 10/14)
//	layout/       JSON grid layouts → ready-to-search Pathfinders
//	cmd/gridpath  command-line front end for layout files
//
// Quick ASCII example (a path around a wall, '#' blocked, '*' path):
//
//	..*...
//	.*#*..
//	.*#.*.
//	*.#..*
//
//	go get github.com/katalvlaran/gridpath
package gridpath
