package render

import (
	"fmt"
	"image/color"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (r *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < r.Width; col++ {
			topColor := r.GetPixel(col, topY)
			botColor := r.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorSky     = color.RGBA{135, 206, 235, 255}
)

// ColorFromVec4 converts an RGBA vector in the 0-1 range to a Color.
// Components outside the range are clamped.
func ColorFromVec4(v math3d.Vec4) Color {
	c := v.Clamp(math3d.Scalar(0), math3d.Scalar(1)).Prod(math3d.Scalar(255))
	return RGBA(uint8(c.X+0.5), uint8(c.Y+0.5), uint8(c.Z+0.5), uint8(c.W+0.5))
}

// ColorToVec4 converts c to an RGBA vector in the 0-1 range.
func ColorToVec4(c Color) math3d.Vec4 {
	return math3d.V4(float64(c.R), float64(c.G), float64(c.B), float64(c.A)).Quot(math3d.Scalar(255))
}

// Shade scales the RGB channels of c by k and leaves alpha alone.
func Shade(c Color, k float64) Color {
	return ColorFromVec4(ColorToVec4(c).Prod(math3d.V4(k, k, k, 1)))
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string. The leading '#' is
// optional.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex("#" + strings.TrimPrefix(s, "#"))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(c.RGB255()), nil
}

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}
