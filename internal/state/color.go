package state

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	pastelSaturation = 70
	pastelLightness  = 75
)

// Color is an HSL color. Saturation and Lightness are percentages.
type Color struct {
	Hue        int
	Saturation int
	Lightness  int
}

// RandomPastelColor picks a hue uniformly from [0, 360) at fixed pastel
// saturation and lightness.
func RandomPastelColor() Color {
	return Color{
		Hue:        rand.IntN(360),
		Saturation: pastelSaturation,
		Lightness:  pastelLightness,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// NRGBA converts the color for drawing.
func (c Color) NRGBA() color.NRGBA {
	cf := colorful.Hsl(float64(c.Hue), float64(c.Saturation)/100, float64(c.Lightness)/100).Clamped()
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor reads the hsl(H, S%, L%) form produced by Color.String.
func ParseColor(s string) (Color, error) {
	var c Color
	var rest string
	n, _ := fmt.Sscanf(s, "hsl(%d, %d%%, %d%%)%s", &c.Hue, &c.Saturation, &c.Lightness, &rest)
	if n < 3 || rest != "" {
		return Color{}, fmt.Errorf("malformed color %q", s)
	}
	if c.Hue < 0 || c.Hue >= 360 ||
		c.Saturation < 0 || c.Saturation > 100 ||
		c.Lightness < 0 || c.Lightness > 100 {
		return Color{}, fmt.Errorf("color out of range %q", s)
	}
	return c, nil
}
