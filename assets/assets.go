package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/zoomview/shared/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

const manifestName = "manifest.yaml"

var (
	//go:embed manifest.yaml
	assetFS embed.FS
)

// Manifest is a scheme manifest together with the file system its map
// paths resolve in.
type Manifest struct {
	*scene.Manifest
	FS fs.FS
}

// LoadManifest opens the manifest at path, or the embedded one when path
// is empty. Map paths in an external manifest are relative to its
// directory.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		m, err := scene.LoadManifest(assetFS, manifestName)
		if err != nil {
			return nil, fmt.Errorf("embedded manifest: %w", err)
		}
		return &Manifest{Manifest: m, FS: assetFS}, nil
	}

	fsys := os.DirFS(filepath.Dir(path))
	m, err := scene.LoadManifest(fsys, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return &Manifest{Manifest: m, FS: fsys}, nil
}

// ImageCache converts rendered scene maps to ebiten images once.
type ImageCache struct {
	images map[*scene.Scene]*ebiten.Image
}

func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[*scene.Scene]*ebiten.Image)}
}

// Image returns the ebiten image of a scene's map, or nil for grid scenes.
func (c *ImageCache) Image(sc *scene.Scene) *ebiten.Image {
	if sc == nil || sc.Image == nil {
		return nil
	}
	if img, ok := c.images[sc]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sc.Image)
	c.images[sc] = img
	return img
}

// Release frees the GPU memory of every cached image.
func (c *ImageCache) Release() {
	for sc, img := range c.images {
		img.Deallocate()
		delete(c.images, sc)
	}
}
