package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHalfBlocks draws img with one "▀" cell per two pixel rows. The
// foreground colors the upper pixel and the background the lower one.
func renderHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteString("\n")
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			b.WriteString(style.Render("▀"))
		}
	}

	return b.String()
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}
