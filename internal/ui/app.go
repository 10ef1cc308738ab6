package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"ShapeBoard/internal/state"
)

type Options struct {
	Title     string
	Width     float32
	Height    float32
	ExportDir string
}

// NewWindow lays out the toolbar and board for store. If the Renderer cannot
// attach, the window still opens with an inert board.
func NewWindow(a fyne.App, store *state.Store, opts Options, logger *zap.Logger) fyne.Window {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := a.NewWindow(opts.Title)
	w.Resize(fyne.NewSize(opts.Width, opts.Height))

	board := NewBoardWidget()
	anchors := newControls(board)
	status := widget.NewLabel("Ready")
	exportBtn := newExportButton(store, opts.ExportDir, status, logger.Named("export"))

	if _, err := Attach(store, anchors, logger); err != nil {
		status.SetText("Board unavailable")
	}

	toolbar := newToolbar(anchors, exportBtn)
	w.SetContent(container.NewBorder(toolbar, status, nil, nil, board))
	return w
}

func RunApp(a fyne.App, store *state.Store, opts Options, logger *zap.Logger) {
	NewWindow(a, store, opts, logger).ShowAndRun()
}
