package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPastelColor(t *testing.T) {
	hues := map[int]bool{}
	for i := 0; i < 1000; i++ {
		c := RandomPastelColor()
		assert.GreaterOrEqual(t, c.Hue, 0)
		assert.Less(t, c.Hue, 360)
		assert.Equal(t, 70, c.Saturation)
		assert.Equal(t, 75, c.Lightness)
		hues[c.Hue] = true
	}
	assert.Greater(t, len(hues), 100)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "hsl(123, 70%, 75%)", Color{Hue: 123, Saturation: 70, Lightness: 75}.String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("hsl(42, 70%, 75%)")
	require.NoError(t, err)
	assert.Equal(t, Color{Hue: 42, Saturation: 70, Lightness: 75}, c)

	for _, bad := range []string{"", "red", "hsl(42, 70%)", "hsl(400, 70%, 75%)", "hsl(42, 70%, 75%)x", "rgb(1, 2, 3)"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColorNRGBA(t *testing.T) {
	red := Color{Hue: 0, Saturation: 100, Lightness: 50}.NRGBA()
	assert.Equal(t, uint8(255), red.R)
	assert.Equal(t, uint8(0), red.G)
	assert.Equal(t, uint8(0), red.B)
	assert.Equal(t, uint8(255), red.A)

	pastel := Color{Hue: 120, Saturation: 70, Lightness: 75}.NRGBA()
	assert.Greater(t, pastel.G, pastel.R)
	assert.Greater(t, pastel.G, pastel.B)
}
