package preview

import (
	"fmt"
	"image"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

const (
	legendRow    = 18
	legendSwatch = 14
	legendWidth  = 220
)

// Legend lists every band with its colour, the upper edge of its bin and how
// many tiles fell into it.
func Legend(bins terrain.BinSet, counts [terrain.NumBands]int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, legendWidth, legendRow*(terrain.NumBands+1)))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colornames.White}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.Black),
		Face: basicfont.Face7x13,
	}
	label := func(row int, text string) {
		d.Dot = fixed.P(legendSwatch+8, row*legendRow+13)
		d.DrawString(text)
	}

	label(0, "bins: "+bins.Name)
	for band, c := range Palette(terrain.NumBands) {
		row := band + 1
		r := image.Rect(2, row*legendRow+2, 2+legendSwatch, row*legendRow+2+legendSwatch)
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)

		edge := "rest"
		if band < len(bins.Edges) {
			edge = fmt.Sprintf("< %.2f", bins.Edges[band])
		}
		label(row, fmt.Sprintf("%d  %-7s %6d tiles", band, edge, counts[band]))
	}
	return img
}
