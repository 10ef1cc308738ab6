package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/state"
)

func TestPDF(t *testing.T) {
	var shapes []state.Shape
	for i := 1; i <= 60; i++ {
		typ := state.Square
		if i%2 == 0 {
			typ = state.Circle
		}
		shapes = append(shapes, state.Shape{ID: i, Type: typ, Color: state.RandomPastelColor()})
	}

	path := filepath.Join(t.TempDir(), "out", "board.pdf")
	require.NoError(t, PDF(path, shapes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFEmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PDF(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFileName(t *testing.T) {
	a, b := FileName(), FileName()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "shapes-"))
	assert.True(t, strings.HasSuffix(a, ".pdf"))
}
