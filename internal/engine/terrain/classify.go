package terrain

// NumBands is the number of texture bands a tile can be classified into.
const NumBands = 8

// BinSet is an ordered list of band edges expressed as fractions of the height range.
// A height whose offset above the minimum is below Edges[i]*range falls in band i;
// anything past the last edge is band NumBands-1.
type BinSet struct {
	Name  string
	Edges [NumBands - 1]float32
}

// FineBins has narrow low and high bands.
var FineBins = BinSet{
	Name:  "fine",
	Edges: [NumBands - 1]float32{0.10, 0.15, 0.35, 0.45, 0.65, 0.75, 0.85},
}

// CoarseBins is the older, evenly spread set. Its last two edges coincide,
// so band 6 is never produced.
var CoarseBins = BinSet{
	Name:  "coarse",
	Edges: [NumBands - 1]float32{0.1, 0.2, 0.3, 0.5, 0.7, 0.8, 0.8},
}

// ParseBinSet returns the bin set with the given config name.
func ParseBinSet(name string) (BinSet, bool) {
	switch name {
	case "", FineBins.Name:
		return FineBins, true
	case CoarseBins.Name:
		return CoarseBins, true
	}
	return FineBins, false
}

// Classify returns the band of the average of heights, normalized against
// [minHeight, maxHeight]. The comparison multiplies edges by the range instead of
// dividing by it, so a flat map (range 0) lands every tile in the last band.
func (b BinSet) Classify(minHeight, maxHeight float32, heights ...float32) int {
	if len(heights) == 0 {
		return NumBands - 1
	}
	var sum float32
	for _, h := range heights {
		sum += h
	}
	offset := sum/float32(len(heights)) - minHeight
	span := maxHeight - minHeight
	if span == 0 {
		// Same answer the comparisons give at offset 0, for any offset.
		return NumBands - 1
	}

	for band, edge := range b.Edges {
		if offset < span*edge {
			return band
		}
	}
	return NumBands - 1
}
