package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// newControls builds the toolbar widgets. Button callbacks are left empty
// for Attach to fill in.
func newControls(board *BoardWidget) Anchors {
	return Anchors{
		AddSquare:      widget.NewButtonWithIcon("Square", theme.ContentAddIcon(), nil),
		AddCircle:      widget.NewButtonWithIcon("Circle", theme.ContentAddIcon(), nil),
		RecolorSquares: widget.NewButtonWithIcon("Recolor squares", theme.ColorPaletteIcon(), nil),
		RecolorCircles: widget.NewButtonWithIcon("Recolor circles", theme.ColorPaletteIcon(), nil),
		SquareCount:    widget.NewLabel("0"),
		CircleCount:    widget.NewLabel("0"),
		Board:          board,
	}
}

func newToolbar(a Anchors, extra ...fyne.CanvasObject) fyne.CanvasObject {
	items := []fyne.CanvasObject{
		widget.NewLabel("Add:"),
		a.AddSquare,
		a.AddCircle,
		widget.NewSeparator(),
		a.RecolorSquares,
		a.RecolorCircles,
		widget.NewSeparator(),
		widget.NewLabel("Squares:"),
		a.SquareCount,
		widget.NewLabel("Circles:"),
		a.CircleCount,
		layout.NewSpacer(),
	}
	return container.NewHBox(append(items, extra...)...)
}
