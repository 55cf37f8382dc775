// Package texture enumerates and decodes the texture directory.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// ErrNoTextures is returned when the directory holds no regular files.
var ErrNoTextures = errors.New("no textures found")

// LoadError reports a texture file that could not be decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load texture %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Texture is one decoded texture image. Image is always opaque; the source
// alpha channel is ignored.
type Texture struct {
	Path  string
	Image *image.NRGBA
}

// List returns the regular files in dir, sorted by name. Every regular file
// is a texture candidate regardless of extension.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read texture dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoTextures)
	}
	return paths, nil
}

// Load decodes every texture in dir concurrently. The result keeps the
// sorted file order. Any failure aborts the whole load.
func Load(dir string) ([]Texture, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}

	textures := make([]Texture, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			img, err := decode(path)
			if err != nil {
				return &LoadError{Path: path, Err: err}
			}
			textures[i] = Texture{Path: path, Image: opaque(img)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return textures, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// opaque copies img to an origin-based NRGBA with alpha forced to 255. The
// colour channels keep their unpremultiplied values, also where the source
// was fully transparent.
func opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 255
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// Wrap maps an unbounded selection index onto [0, count). It returns 0 when
// count is not positive.
func Wrap(index, count int) int {
	if count <= 0 {
		return 0
	}
	i := index % count
	if i < 0 {
		i += count
	}
	return i
}
