package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"ShapeBoard/internal/state"
)

// Page layout in millimetres.
const (
	margin  = 15.0
	cell    = 20.0
	gap     = 5.0
	perRow  = 7
	topSkip = 30.0
)

// FileName returns a fresh export file name.
func FileName() string {
	return fmt.Sprintf("shapes-%s.pdf", uuid.NewString())
}

// PDF draws shapes in board order onto A4 pages and writes the result to path.
func PDF(path string, shapes []state.Shape) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	squares, circles := 0, 0
	for _, sh := range shapes {
		if sh.Type == state.Circle {
			circles++
		} else {
			squares++
		}
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("ShapeBoard", true)
	p.AddPage()
	p.SetFont("Helvetica", "B", 16)
	p.Cell(0, 10, "ShapeBoard")
	p.Ln(10)
	p.SetFont("Helvetica", "", 11)
	p.Cell(0, 8, fmt.Sprintf("Squares: %d   Circles: %d", squares, circles))

	_, pageH := p.GetPageSize()
	y := topSkip
	for i, sh := range shapes {
		col := i % perRow
		if col == 0 && i > 0 {
			y += cell + gap
			if y+cell > pageH-margin {
				p.AddPage()
				y = margin
			}
		}
		x := margin + float64(col)*(cell+gap)

		c := sh.Color.NRGBA()
		p.SetFillColor(int(c.R), int(c.G), int(c.B))
		switch sh.Type {
		case state.Circle:
			p.Circle(x+cell/2, y+cell/2, cell/2, "F")
		default:
			p.Rect(x, y, cell, cell, "F")
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
