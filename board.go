package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/palette"
)

// board dibuja la cuadrícula y traduce clics a celdas
type board struct {
	widget.BaseWidget
	grid    *grid.Grid
	onPaint func(idx int)
	onErase func(idx int)
}

func newBoard(g *grid.Grid, onPaint, onErase func(idx int)) *board {
	b := &board{grid: g, onPaint: onPaint, onErase: onErase}
	b.ExtendBaseWidget(b)
	return b
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:  b,
		cells:  make([]*canvas.Rectangle, b.grid.Len()),
		drawn:  make([]grid.State, b.grid.Len()),
		fresh:  true,
		shadow: canvas.NewRectangle(palette.Background()),
	}
	r.objects = append(r.objects, r.shadow)
	for i := range r.cells {
		rect := canvas.NewRectangle(palette.Color(b.grid.State(i)))
		r.cells[i] = rect
		r.objects = append(r.objects, rect)
	}
	for i := 0; i <= b.grid.Size()*2+1; i++ {
		line := canvas.NewLine(palette.Lines())
		line.StrokeWidth = gridLineWidth
		r.lines = append(r.lines, line)
		r.objects = append(r.objects, line)
	}
	return r
}

func (b *board) extent() float32 {
	size := b.Size()
	if size.Height < size.Width {
		return size.Height
	}
	return size.Width
}

func (b *board) at(pos fyne.Position, fn func(int)) {
	if fn == nil {
		return
	}
	if idx, ok := b.grid.Locate(pos.X, pos.Y, b.extent()); ok {
		fn(idx)
	}
}

func (b *board) Tapped(ev *fyne.PointEvent)          { b.at(ev.Position, b.onPaint) }
func (b *board) TappedSecondary(ev *fyne.PointEvent) { b.at(ev.Position, b.onErase) }
func (b *board) Dragged(ev *fyne.DragEvent)          { b.at(ev.Position, b.onPaint) }
func (b *board) DragEnd()                            {}

type boardRenderer struct {
	board   *board
	shadow  *canvas.Rectangle
	cells   []*canvas.Rectangle
	lines   []*canvas.Line
	objects []fyne.CanvasObject
	drawn   []grid.State
	fresh   bool
}

func (r *boardRenderer) Layout(size fyne.Size) {
	g := r.board.grid
	extent := r.board.extent()
	gap := g.CellSize(extent)

	r.shadow.Move(fyne.NewPos(0, 0))
	r.shadow.Resize(fyne.NewSize(extent, extent))
	for idx, rect := range r.cells {
		x, y := g.Origin(idx, extent)
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(fyne.NewSize(gap, gap))
	}

	n := g.Size()
	for i := 0; i <= n; i++ {
		p := float32(i) * gap
		h, v := r.lines[2*i], r.lines[2*i+1]
		h.Position1, h.Position2 = fyne.NewPos(0, p), fyne.NewPos(extent, p)
		v.Position1, v.Position2 = fyne.NewPos(p, 0), fyne.NewPos(p, extent)
	}
}

func (r *boardRenderer) MinSize() fyne.Size {
	side := float32(r.board.grid.Size()) * minCellSize
	return fyne.NewSize(side, side)
}

// Refresh repinta solo las celdas que cambiaron desde el último cuadro
func (r *boardRenderer) Refresh() {
	g := r.board.grid
	for idx, rect := range r.cells {
		s := g.State(idx)
		if !r.fresh && s == r.drawn[idx] {
			continue
		}
		r.drawn[idx] = s
		rect.FillColor = palette.Color(s)
		rect.Refresh()
	}
	r.fresh = false
}

func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardRenderer) Destroy()                     {}
