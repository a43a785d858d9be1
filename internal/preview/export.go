package preview

import (
	"image"
	"path/filepath"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Options selects which images Export writes.
type Options struct {
	Heightmap bool
	Bands     bool
	Atlas     bool
	Legend    bool
	SlotSize  int // atlas pixels per slot
	CellSize  int // band map pixels per tile
}

// File names written by Export.
const (
	HeightmapFile = "heightmap.png"
	BandsFile     = "bands.png"
	AtlasFile     = "atlas.png"
	LegendFile    = "legend.png"
)

// Export writes the selected previews of t into dir and returns their paths.
// It stops at the first failure.
func Export(dir string, t *terrain.Terrain, opts Options) ([]string, error) {
	type job struct {
		name string
		img  func() image.Image
	}

	var jobs []job
	if opts.Heightmap {
		jobs = append(jobs, job{HeightmapFile, func() image.Image { return Heightmap(t.Heightmap()) }})
	}
	if opts.Bands {
		jobs = append(jobs, job{BandsFile, func() image.Image { return Bands(t.TextureMap(), opts.CellSize) }})
	}
	if opts.Atlas {
		slot := opts.SlotSize
		if slot <= 0 {
			slot = 64
		}
		jobs = append(jobs, job{AtlasFile, func() image.Image { return Atlas(t.Atlas(), slot) }})
	}
	if opts.Legend {
		jobs = append(jobs, job{LegendFile, func() image.Image { return Legend(t.Params().Bins, t.BandCounts()) }})
	}

	paths := make([]string, 0, len(jobs))
	for _, j := range jobs {
		path := filepath.Join(dir, j.name)
		if err := WritePNG(path, j.img()); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
