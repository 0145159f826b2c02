package assets

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprites are drawn at start-up rather than shipped as files. Each entry
// renders one named image.
var generators = map[string]func() image.Image{
	"hero.png":  heroSheet,
	"heart.png": heart,
	"arrow.png": arrow,
	"tomb.png":  tomb,
	"slime.png": slime,
	"spike.png": spike,
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*ebiten.Image{}
)

// LoadImage returns the named asset. Images are generated once and shared.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if img, ok := cache[clean]; ok {
		return img, nil
	}
	img, err := LoadRGBA(clean)
	if err != nil {
		return nil, err
	}
	eimg := ebiten.NewImageFromImage(img)
	cache[clean] = eimg
	return eimg, nil
}

// LoadRGBA renders the named asset without touching the GPU.
func LoadRGBA(path string) (image.Image, error) {
	gen, ok := generators[cleanAssetPath(path)]
	if !ok {
		return nil, fmt.Errorf("assets: unknown image %q", path)
	}
	return gen(), nil
}

// Names lists every asset LoadImage can serve.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	return names
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
