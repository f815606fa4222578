package assets

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Background renders every visible tile layer of a TMX map into one image.
// It returns nil, after logging, if the map or its tilesets cannot be drawn.
func Background(fsys fs.FS, tmxPath string) *ebiten.Image {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		logger.Warn("asset missing", "path", tmxPath, "err", err)
		return nil
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		logger.Warn("cannot render level", "path", tmxPath, "err", err)
		return nil
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		logger.Warn("cannot render level", "path", tmxPath, "err", err)
		return nil
	}

	return ebiten.NewImageFromImage(renderer.Result)
}
