package terrain

import (
	"testing"
)

func TestFineBins_Classify(t *testing.T) {
	tests := []struct {
		height float32
		want   int
	}{
		{0, 0},
		{5, 0},
		{12, 1},
		{20, 2},
		{40, 3},
		{50, 4},
		{70, 5},
		{80, 6},
		{90, 7},
		{100, 7},
	}

	for _, tt := range tests {
		got := FineBins.Classify(0, 100, tt.height)
		if got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestClassify_AveragesCorners(t *testing.T) {
	// 0, 0, 15 averages to 5; the maximum alone would be band 1
	if got := FineBins.Classify(0, 100, 0, 0, 15); got != 0 {
		t.Errorf("Classify(0,0,15) = %d, want 0", got)
	}
	if got := FineBins.Classify(0, 100, 40, 40, 60, 60); got != 4 {
		t.Errorf("Classify(40,40,60,60) = %d, want 4", got)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	for _, bins := range []BinSet{FineBins, CoarseBins} {
		t.Run(bins.Name, func(t *testing.T) {
			const minH, maxH = 2.0, 12.0
			seen := map[int]bool{}
			prev := -1
			for h := float32(minH); h <= maxH; h += 0.01 {
				band := bins.Classify(minH, maxH, h)
				if band < prev {
					t.Fatalf("band decreased from %d to %d at height %v", prev, band, h)
				}
				if band < 0 || band >= NumBands {
					t.Fatalf("band %d out of range at height %v", band, h)
				}
				seen[band] = true
				prev = band
			}

			for band := range NumBands {
				if bins.Name == CoarseBins.Name && band == 6 {
					if seen[band] {
						t.Error("coarse bins produced band 6 despite coinciding edges")
					}
					continue
				}
				if !seen[band] {
					t.Errorf("band %d never produced", band)
				}
			}
		})
	}
}

func TestClassify_FlatRange(t *testing.T) {
	tests := [][]float32{
		{5},
		{5, 5, 5},
		{5, 5, 5, 5},
		{3},
		{100, 0, 42},
	}

	for _, heights := range tests {
		for _, bins := range []BinSet{FineBins, CoarseBins} {
			if got := bins.Classify(5, 5, heights...); got != NumBands-1 {
				t.Errorf("%s.Classify(5, 5, %v) = %d, want %d", bins.Name, heights, got, NumBands-1)
			}
		}
	}
}

func TestCoarseBins_Classify(t *testing.T) {
	tests := []struct {
		height float32
		want   int
	}{
		{5, 0},
		{15, 1},
		{25, 2},
		{40, 3},
		{60, 4},
		{75, 5},
		{85, 7},
	}

	for _, tt := range tests {
		if got := CoarseBins.Classify(0, 100, tt.height); got != tt.want {
			t.Errorf("Classify(%v) = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestParseBinSet(t *testing.T) {
	if b, ok := ParseBinSet("coarse"); !ok || b.Name != "coarse" {
		t.Errorf("ParseBinSet(coarse) = %v, %v", b.Name, ok)
	}
	if b, ok := ParseBinSet(""); !ok || b.Name != "fine" {
		t.Errorf("ParseBinSet(\"\") = %v, %v", b.Name, ok)
	}
	if _, ok := ParseBinSet("bogus"); ok {
		t.Error("ParseBinSet(bogus) should fail")
	}
}
