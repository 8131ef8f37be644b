package search_test

import (
	"context"
	"fmt"
	"strings"

	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/search"
)

// ExampleRun finds the way around a short wall on a 4×4 grid.
func ExampleRun() {
	g, _ := grid.New(4)
	editor := grid.NewEditor(g)
	editor.Paint(g.Index(0, 0)) // start
	editor.Paint(g.Index(0, 3)) // end
	editor.Paint(g.Index(0, 2)) // barriers from here on
	editor.Paint(g.Index(1, 2))
	editor.Prepare()

	start, _ := editor.Start()
	end, _ := editor.End()
	res, err := search.Run(context.Background(), g, start, end, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Outcome, res.Cost)
	cells := make([]string, 0, len(res.Path))
	for _, idx := range res.Path {
		r, c := g.Coord(idx)
		cells = append(cells, fmt.Sprintf("(%d,%d)", r, c))
	}
	fmt.Println(strings.Join(cells, " "))
	// Output:
	// path found 7
	// (0,0) (0,1) (1,1) (2,1) (2,2) (2,3) (1,3) (0,3)
}
