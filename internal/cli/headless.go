package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"astar-visualizer/internal/console"
	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/search"
	"astar-visualizer/internal/snapshot"
)

// RunHeadless loads cfg.Layout, searches it and prints the result to out.
// Intermediate frames are printed when cfg.Frames is set, and the final
// frame is saved to cfg.PNG when given.
func RunHeadless(ctx context.Context, cfg Config, logger *zap.Logger, out io.Writer) (search.Result, error) {
	f, err := os.Open(cfg.Layout)
	if err != nil {
		return search.Result{}, fmt.Errorf("cli: open layout: %w", err)
	}
	defer f.Close()

	layout, err := console.Parse(f)
	if err != nil {
		return search.Result{}, fmt.Errorf("cli: %s: %w", cfg.Layout, err)
	}
	g := layout.Grid
	if err := cfg.CheckExtent(g.Size()); err != nil {
		return search.Result{}, fmt.Errorf("cli: %s: %w", cfg.Layout, err)
	}
	editor := grid.NewEditor(g)
	editor.Prepare()
	start, _ := editor.Start()
	end, _ := editor.End()

	printer := console.NewPrinter(out, !cfg.NoColor)
	onStep := func() {}
	if cfg.Frames {
		onStep = func() {
			if err := printer.Frame(g); err != nil {
				logger.Warn("frame write failed", zap.Error(err))
			}
		}
	}

	logger.Info("headless search",
		zap.String("layout", cfg.Layout), zap.Int("size", g.Size()),
		zap.Int("barriers", g.Count(grid.Barrier)))
	res, err := search.Run(ctx, g, start, end, onStep, search.WithLogger(logger))
	if err != nil {
		return res, err
	}

	if err := printer.Frame(g); err != nil {
		return res, fmt.Errorf("cli: write frame: %w", err)
	}
	if res.Found() {
		fmt.Fprintf(out, "%s: %d steps, %d cells expanded\n", res.Outcome, res.Cost, len(res.Order))
	} else {
		fmt.Fprintf(out, "%s: %d cells expanded\n", res.Outcome, len(res.Order))
	}

	if cfg.PNG != "" {
		if err := snapshot.SavePNG(cfg.PNG, g, cfg.Extent); err != nil {
			return res, err
		}
		logger.Info("frame saved", zap.String("path", cfg.PNG))
	}
	return res, nil
}
