// Package preview renders generated terrain into images: the band colour atlas,
// a grayscale heightmap, a per-tile band map and a band legend.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// bandColors runs from deep water to snow, one colour per band.
var bandColors = [terrain.NumBands]color.RGBA{
	colornames.Navy,
	colornames.Royalblue,
	colornames.Khaki,
	colornames.Yellowgreen,
	colornames.Forestgreen,
	colornames.Darkolivegreen,
	colornames.Sienna,
	colornames.Snow,
}

// Palette returns n slot colours. Slots past the last band are gray.
func Palette(n int) []color.RGBA {
	p := make([]color.RGBA, n)
	for i := range p {
		if i < len(bandColors) {
			p[i] = bandColors[i]
		} else {
			p[i] = colornames.Dimgray
		}
	}
	return p
}

// Atlas paints one square of slot pixels per atlas entry, left to right,
// so that the atlas UVs sample the matching colour.
func Atlas(atlas *terrain.TextureAtlas, slot int) *image.RGBA {
	n := atlas.Len()
	img := image.NewRGBA(image.Rect(0, 0, n*slot, slot))
	for i, c := range Palette(n) {
		r := image.Rect(i*slot, 0, (i+1)*slot, slot)
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	return img
}

// Heightmap maps every sample onto 0..255 between the map's min and max.
// A flat map is painted white, the band that flat terrain falls into.
func Heightmap(hm *terrain.Heightmap) *image.Gray {
	rows := len(hm.Samples)
	cols := 0
	if rows > 0 {
		cols = len(hm.Samples[0])
	}
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	span := hm.MaxHeight - hm.MinHeight
	for z, row := range hm.Samples {
		for x, h := range row {
			v := uint8(255)
			if span > 0 {
				v = uint8((h - hm.MinHeight) / span * 255)
			}
			img.SetGray(x, z, color.Gray{Y: v})
		}
	}
	return img
}

// Bands paints each tile with its band colour, scaled up to cell pixels per tile.
func Bands(tm terrain.TextureMap, cell int) *image.RGBA {
	deep := len(tm)
	wide := 0
	if deep > 0 {
		wide = len(tm[0])
	}
	palette := Palette(terrain.NumBands)

	small := image.NewRGBA(image.Rect(0, 0, wide, deep))
	for z, row := range tm {
		for x, band := range row {
			c := colornames.Black
			if band >= 0 && band < len(palette) {
				c = palette[band]
			}
			small.SetRGBA(x, z, c)
		}
	}
	if cell <= 1 {
		return small
	}

	img := image.NewRGBA(image.Rect(0, 0, wide*cell, deep*cell))
	draw.NearestNeighbor.Scale(img, img.Bounds(), small, small.Bounds(), draw.Src, nil)
	return img
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
