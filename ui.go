package main

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"astar-visualizer/internal/cli"
	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/palette"
	"astar-visualizer/internal/search"
)

const (
	windowTitle = "A* Pathfinder (Go + Fyne)"
	labelTitle  = "A* • distancia Manhattan"
	labelHelp   = "Clic izq: inicio, fin, muros • Clic der: borrar • ESPACIO: buscar • C: limpiar • ESC: detener"

	statusReadyMessage   = "Listo."
	statusNeedMarkers    = "Coloca inicio y fin antes de buscar."
	statusBusyMessage    = "Búsqueda en curso…"
	statusClearedMessage = "Cuadrícula limpia."
	statusCancelMessage  = "Búsqueda detenida."
	msgFoundFmt          = "Camino de %d pasos • Celdas expandidas: %d"
	msgNoPathFmt         = "No hay camino • Celdas expandidas: %d"
	msgErrorFmt          = "Error: %v"

	// tablero
	minCellSize   = 6
	gridLineWidth = 1
	windowPadding = 140
)

// Colores en (hex)
const (
	colorBgHex     = "#0f172a"
	colorFgHex     = "#e5e7eb"
	colorButtonHex = "#334155"
)

// boardTheme cambia solo los colores que usa el visualizador
type boardTheme struct{ fyne.Theme }

func (t boardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return palette.MustHex(colorBgHex)
	case theme.ColorNameForeground:
		return palette.MustHex(colorFgHex)
	case theme.ColorNameButton:
		return palette.MustHex(colorButtonHex)
	case theme.ColorNamePrimary:
		return palette.Color(grid.Path)
	}
	return t.Theme.Color(name, variant)
}

// visualizer es la ventana: crear → run → dispose
type visualizer struct {
	cfg    cli.Config
	log    *zap.Logger
	app    fyne.App
	window fyne.Window
	editor *grid.Editor
	board  *board
	status *widget.Label

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func newVisualizer(cfg cli.Config, logger *zap.Logger) (*visualizer, error) {
	g, err := grid.New(cfg.Size)
	if err != nil {
		return nil, err
	}

	a := app.New()
	a.Settings().SetTheme(boardTheme{theme.DefaultTheme()})
	w := a.NewWindow(windowTitle)
	side := float32(cfg.Extent)
	w.Resize(fyne.NewSize(side, side+windowPadding))

	v := &visualizer{
		cfg:    cfg,
		log:    logger.Named("ui"),
		app:    a,
		window: w,
		editor: grid.NewEditor(g),
		status: widget.NewLabel(statusReadyMessage),
	}
	v.board = newBoard(g, v.paint, v.erase)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaPlayIcon(), func() { v.startSearch() }),
		widget.NewToolbarAction(theme.MediaStopIcon(), func() { v.stopSearch() }),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { v.clear() }),
	)

	titleText := canvas.NewText(labelTitle, palette.MustHex(colorFgHex))
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter
	titleBar := container.NewPadded(container.NewCenter(titleText))

	root := container.NewBorder(
		container.NewVBox(titleBar, toolbar, widget.NewLabel(labelHelp)),
		v.status,
		nil,
		nil,
		v.board,
	)
	w.SetContent(container.NewPadded(root))

	w.Canvas().SetOnTypedKey(v.typedKey)
	w.SetCloseIntercept(func() {
		v.stopSearch()
		v.wait()
		w.Close()
	})
	return v, nil
}

func (v *visualizer) run() {
	v.log.Info("window open", zap.Int("size", v.cfg.Size), zap.Int("extent", v.cfg.Extent))
	v.window.ShowAndRun()
}

// dispose detiene cualquier búsqueda pendiente
func (v *visualizer) dispose() {
	v.stopSearch()
	v.wait()
	v.log.Info("window closed")
}

// Acciones
func (v *visualizer) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace:
		v.startSearch()
	case fyne.KeyC:
		v.clear()
	case fyne.KeyEscape:
		v.stopSearch()
	}
}

func (v *visualizer) paint(idx int) {
	if v.busy() {
		return
	}
	s := v.editor.Paint(idx)
	v.log.Debug("paint", zap.Int("cell", idx), zap.Stringer("state", s))
	v.board.Refresh()
}

func (v *visualizer) erase(idx int) {
	if v.busy() {
		return
	}
	v.editor.Erase(idx)
	v.board.Refresh()
}

func (v *visualizer) clear() {
	if v.busy() {
		return
	}
	v.editor.Clear()
	v.board.Refresh()
	v.status.SetText(statusClearedMessage)
}

func (v *visualizer) startSearch() {
	if !v.editor.Ready() {
		v.status.SetText(statusNeedMarkers)
		return
	}

	v.mu.Lock()
	if v.running {
		v.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	v.running, v.cancel, v.done = true, cancel, done
	v.mu.Unlock()

	// la goroutine de búsqueda es dueña de la cuadrícula hasta terminar
	v.editor.Prepare()
	start, _ := v.editor.Start()
	end, _ := v.editor.End()
	g := v.editor.Grid()
	v.board.Refresh()
	v.status.SetText(statusBusyMessage)

	go func() {
		defer v.finish(done)
		res, err := search.Run(ctx, g, start, end, v.step, search.WithLogger(v.log))
		v.report(res, err)
	}()
}

func (v *visualizer) step() {
	v.board.Refresh()
	if v.cfg.Delay > 0 {
		time.Sleep(v.cfg.Delay)
	}
}

func (v *visualizer) report(res search.Result, err error) {
	switch {
	case err != nil:
		v.status.SetText(fmt.Sprintf(msgErrorFmt, err))
	case res.Outcome == search.PathFound:
		v.status.SetText(fmt.Sprintf(msgFoundFmt, res.Cost, len(res.Order)))
	case res.Outcome == search.Cancelled:
		v.status.SetText(statusCancelMessage)
	default:
		v.status.SetText(fmt.Sprintf(msgNoPathFmt, len(res.Order)))
	}
	v.board.Refresh()
}

func (v *visualizer) stopSearch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *visualizer) finish(done chan struct{}) {
	v.mu.Lock()
	v.cancel()
	v.running, v.cancel = false, nil
	v.mu.Unlock()
	close(done)
}

func (v *visualizer) wait() {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (v *visualizer) busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.running
}
