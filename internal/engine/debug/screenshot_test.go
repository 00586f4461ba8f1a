package debug

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row red, top row blue, as GL returns them.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))

	_, err = FlipRGBA(pixels, 2, 2)
	assert.Error(t, err)
}

func TestSaveImageBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "map.bmp")
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})

	require.NoError(t, SaveImage(path, src))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := bmp.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, src.Bounds(), got.Bounds())
	r, g, b, _ := got.At(2, 1).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestSaveImageRejectsUnknownExtension(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "map.gif"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "ridgeline")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	name, err := sc.CaptureFromPixels(make([]byte, 4*4*4), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ridgeline_2024-05-01_12-30-00.png"), name)
	assert.FileExists(t, name)
}
