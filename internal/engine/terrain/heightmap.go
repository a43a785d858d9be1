package terrain

import (
	"golang.org/x/sync/errgroup"
)

// NoiseOffsetRange bounds the random offsets added to noise coordinates.
const NoiseOffsetRange = 99999

// SynthesizeHeights samples noise at every tile corner and scales it by HeightScale.
// offsetX and offsetZ shift the sampled region so runs sharing a noise source differ.
//
// The extent starts at (HeightScale, 0) and shrinks onto the samples, so for noise in
// [0,1] MinHeight and MaxHeight are the exact extremes.
func SynthesizeHeights(p Params, noise NoiseSource, offsetX, offsetZ float64) *Heightmap {
	rows, cols := p.TilesDeep+1, p.TilesWide+1
	backing := make([]float32, rows*cols)
	samples := make([][]float32, rows)
	rowMin := make([]float32, rows)
	rowMax := make([]float32, rows)

	forEachRow(rows, p.Workers, func(z int) {
		row := backing[z*cols : (z+1)*cols : (z+1)*cols]
		samples[z] = row

		lo, hi := p.HeightScale, float32(0)
		a := float64(z)/float64(rows)*float64(p.NoiseScale) + offsetZ
		for x := range row {
			b := float64(x)/float64(cols)*float64(p.NoiseScale) + offsetX
			h := float32(noise.Noise2D(a, b)) * p.HeightScale
			row[x] = h
			if h < lo {
				lo = h
			}
			if h > hi {
				hi = h
			}
		}
		rowMin[z], rowMax[z] = lo, hi
	})

	hm := &Heightmap{Samples: samples, MinHeight: p.HeightScale, MaxHeight: 0}
	for z := range rows {
		if rowMin[z] < hm.MinHeight {
			hm.MinHeight = rowMin[z]
		}
		if rowMax[z] > hm.MaxHeight {
			hm.MaxHeight = rowMax[z]
		}
	}
	return hm
}

// forEachRow calls fn for every row in [0, n). With more than one worker the rows
// run concurrently; fn must only write state owned by its row.
func forEachRow(n, workers int, fn func(row int)) {
	if workers <= 1 {
		for row := range n {
			fn(row)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for row := range n {
		g.Go(func() error {
			fn(row)
			return nil
		})
	}
	_ = g.Wait()
}
