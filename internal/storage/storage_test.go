package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/state"
)

var (
	_ state.Storage = (*Memory)(nil)
	_ state.Storage = (*Preferences)(nil)
	_ state.Storage = (*SQLite)(nil)
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shapes.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	_, ok, err := db.Load("board")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Save("board", []byte(`{"shapes":[],"nextId":1}`)))
	require.NoError(t, db.Save("board", []byte(`{"shapes":[],"nextId":7}`)))

	got, ok, err := db.Load("board")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"shapes":[],"nextId":7}`, string(got))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Save("k", []byte("v")))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	got, ok, err := db.Load("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
}

func TestPreferences(t *testing.T) {
	a := test.NewTempApp(t)
	p := NewPreferences(a.Preferences())

	_, ok, err := p.Load("board")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Save("board", []byte("data")))
	got, ok, err := p.Load("board")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data", string(got))
}

func TestMemorySaveError(t *testing.T) {
	m := NewMemory()
	m.SaveErr = errors.New("quota exceeded")

	assert.ErrorIs(t, m.Save("k", []byte("v")), m.SaveErr)
	_, ok, _ := m.Load("k")
	assert.False(t, ok)
	assert.Zero(t, m.Saves)
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Save("k", buf))
	buf[0] = 'x'

	got, ok, err := m.Load("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, m.Saves)
}
