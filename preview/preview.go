// Package preview renders snapshots of a drawer controller's geometry
// into images, for debugging, documentation, and golden tests. It draws
// plain rectangles: the drawer surface behind, the pane in front at its
// current offset. No text, no chrome.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/paneworks/drawer"
)

// Palette selects the fill colors of a snapshot.
type Palette struct {
	Background color.Color
	Drawer     color.Color
	Pane       color.Color
}

// DefaultPalette returns a high-contrast palette.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0x20, 0x20, 0x24, 0xff},
		Drawer:     color.RGBA{0x2e, 0x6e, 0x4e, 0xff},
		Pane:       color.RGBA{0xd8, 0xd8, 0xe0, 0xff},
	}
}

// Render draws the controller's current geometry at 1pt = 1px.
func Render(c *drawer.Controller, p Palette) *image.RGBA {
	w, h := c.ContainerSize()
	bounds := image.Rect(0, 0, int(w), int(h))
	img := image.NewRGBA(bounds)

	draw.Draw(img, bounds, image.NewUniform(p.Background), image.Point{}, draw.Src)

	// The drawer surface fills the container and never moves; it only
	// shows where the pane has been displaced from.
	draw.Draw(img, bounds, image.NewUniform(p.Drawer), image.Point{}, draw.Over)

	off := c.PaneOffset()
	pane := bounds.Add(image.Pt(int(off.X), int(off.Y)))
	draw.Draw(img, pane.Intersect(bounds), image.NewUniform(p.Pane), image.Point{}, draw.Over)

	return img
}

// Thumbnail scales a snapshot to the given size using nearest-neighbor
// interpolation, which keeps the rectangle edges crisp.
func Thumbnail(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes a snapshot to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}
