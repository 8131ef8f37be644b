package console

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"

	"astar-visualizer/internal/grid"
)

var glyphs = map[grid.State]string{
	grid.Empty:   ".",
	grid.Open:    "o",
	grid.Closed:  "x",
	grid.Barrier: "#",
	grid.Start:   "S",
	grid.End:     "E",
	grid.Path:    "*",
}

// Glyph returns the character printed for state s.
func Glyph(s grid.State) string {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return "?"
}

// Printer writes grid frames to a terminal.
type Printer struct {
	w      io.Writer
	au     aurora.Aurora
	frames int
}

// NewPrinter returns a Printer writing to w; colour escapes are emitted
// only when color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, au: aurora.NewAurora(color)}
}

// Frames returns how many frames have been written.
func (p *Printer) Frames() int { return p.frames }

// Frame writes the whole grid followed by a blank line.
func (p *Printer) Frame(g *grid.Grid) error {
	bw := bufio.NewWriter(p.w)
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(p.paint(g.State(g.Index(row, col))))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return err
	}
	p.frames++
	return nil
}

func (p *Printer) paint(s grid.State) string {
	glyph := Glyph(s)
	switch s {
	case grid.Open:
		return p.au.Green(glyph).String()
	case grid.Closed:
		return p.au.Brown(glyph).String()
	case grid.Barrier:
		return p.au.Bold(glyph).String()
	case grid.Start:
		return p.au.Red(glyph).String()
	case grid.End:
		return p.au.Cyan(glyph).String()
	case grid.Path:
		return p.au.Magenta(glyph).String()
	default:
		return p.au.Gray(glyph).String()
	}
}
