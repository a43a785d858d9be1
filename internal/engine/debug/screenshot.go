// Package debug provides viewer debugging aids: screenshots and wireframe boxes.
package debug

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/Faultbox/midgard-terrain/internal/preview"
)

// ScreenshotCapture writes framebuffer captures as timestamped PNGs.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFromPixels writes raw RGBA pixel data, width*height*4 bytes, as read back
// from OpenGL. Rows are flipped since OpenGL has its origin at the bottom left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	return sc.CaptureFromImage(img)
}

// CaptureFromImage writes an existing image.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	filename := sc.GenerateFilename()
	if err := preview.WritePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateFilename returns the path the next capture would be written to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	name := fmt.Sprintf("%s_%s.png", sc.prefix, sc.now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(sc.outputDir, name)
}
