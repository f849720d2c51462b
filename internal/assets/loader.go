package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrNoFrame is returned when neither a PNG nor an SVG exists for a frame.
var ErrNoFrame = errors.New("frame not found")

// FrameName returns the base name of bird frame i without extension.
func FrameName(i int) string {
	return fmt.Sprintf("bird_%d", i)
}

// LoadBird loads bird_0 .. bird_{frames-1} from dir. Each frame is read from
// a .png file, or from a .svg file rasterized at w x h when no PNG exists.
//
// The returned set always has frames entries: a frame that cannot be loaded is
// replaced by the ellipse variant and its error is included in the returned
// error. Callers may draw the set even when err is non-nil.
func LoadBird(dir string, frames, w, h int) (Set, error) {
	set := FallbackSet(frames)
	var errs []error

	for i := range set {
		img, err := loadFrame(dir, FrameName(i), w, h)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: %s: %w", FrameName(i), err))
			continue
		}
		set[i] = ImageSprite(img)
	}

	return set, errors.Join(errs...)
}

func loadFrame(dir, name string, w, h int) (image.Image, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".png"))
	if err == nil {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode png: %w", err)
		}
		return img, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	data, err = os.ReadFile(filepath.Join(dir, name+".svg"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoFrame
	}
	if err != nil {
		return nil, err
	}
	return svgToImage(data, w, h)
}

// svgToImage rasterizes SVG data into a w x h RGBA image.
func svgToImage(data []byte, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid svg target size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
