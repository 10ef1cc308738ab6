package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/state"
)

func newExportButton(store *state.Store, dir string, status *widget.Label, logger *zap.Logger) *widget.Button {
	return widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), func() {
		path, err := exportBoard(store, dir)
		if err != nil {
			logger.Error("Export failed", zap.Error(err))
			status.SetText("Export failed")
			return
		}
		logger.Info("Board exported", zap.String("path", path))
		status.SetText(fmt.Sprintf("Exported to %s", path))
	})
}

func exportBoard(store *state.Store, dir string) (string, error) {
	path := filepath.Join(dir, export.FileName())
	if err := export.PDF(path, store.State().Shapes); err != nil {
		return "", err
	}
	return path, nil
}
