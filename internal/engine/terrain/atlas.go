package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AtlasEntry holds the UV rectangle of one atlas slot.
type AtlasEntry struct {
	BottomLeft  mgl32.Vec2
	TopLeft     mgl32.Vec2
	TopRight    mgl32.Vec2
	BottomRight mgl32.Vec2
}

// Corners returns the UVs in BL, TL, TR, BR order.
func (e AtlasEntry) Corners() [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{e.BottomLeft, e.TopLeft, e.TopRight, e.BottomRight}
}

// TextureAtlas indexes a single-row atlas of equally wide texture strips.
type TextureAtlas struct {
	entries []AtlasEntry
}

// NewTextureAtlas precomputes the UV rectangles of numTextures slots.
func NewTextureAtlas(numTextures int) (*TextureAtlas, error) {
	if numTextures <= 0 {
		return nil, invalid("num textures must be positive, got %d", numTextures)
	}

	n := float32(numTextures)
	entries := make([]AtlasEntry, numTextures)
	for i := range entries {
		left := float32(i) / n
		right := float32(i+1) / n
		entries[i] = AtlasEntry{
			BottomLeft:  mgl32.Vec2{left, 1},
			TopLeft:     mgl32.Vec2{left, 0},
			TopRight:    mgl32.Vec2{right, 0},
			BottomRight: mgl32.Vec2{right, 1},
		}
	}
	return &TextureAtlas{entries: entries}, nil
}

// Len returns the number of slots.
func (a *TextureAtlas) Len() int {
	return len(a.entries)
}

// Entry returns the UV rectangle of slot i. Panics if i is out of range.
func (a *TextureAtlas) Entry(i int) AtlasEntry {
	return a.entries[i]
}
