// Command gridpath loads a grid layout and prints the cheapest path between
// two cells.
//
// Usage:
//
//	gridpath -layout maze.json -from 0,0 -to 5,0 [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/pathfinding"
)

func main() {
	layoutPath := flag.String("layout", "", "path to a layout .json file")
	from := flag.String("from", "0,0", "start cell as x,y")
	to := flag.String("to", "", "end cell as x,y")
	verbose := flag.Bool("v", false, "log search diagnostics to stderr")
	flag.Parse()

	if *layoutPath == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		pathfinding.SetLogWriters(os.Stderr, os.Stderr, nil)
		layout.SetLogWriter(os.Stderr)
	}

	sx, sy, err := parseCell(*from)
	if err != nil {
		log.Fatalf("invalid -from: %v", err)
	}
	ex, ey, err := parseCell(*to)
	if err != nil {
		log.Fatalf("invalid -to: %v", err)
	}

	l, err := layout.LoadLayout(*layoutPath)
	switch {
	case errors.Is(err, layout.ErrInvalidLayout):
		log.Fatalf("%s: %v", *layoutPath, err)
	case err != nil:
		log.Fatalf("load layout: %v", err)
	}
	pf, err := l.Build()
	if err != nil {
		log.Fatalf("build layout: %v", err)
	}

	path, err := pf.FindPath(sx, sy, ex, ey)
	switch {
	case errors.Is(err, pathfinding.ErrNoPath):
		fmt.Println("no path")
		fmt.Print(pf.Render(nil))
		os.Exit(1)
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("cost %d, %d cells\n", pathfinding.PathCost(path), len(path))
	fmt.Print(pf.Render(path))
}

// parseCell parses "x,y".
func parseCell(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}
