// Package assets loads sprite sheets, level backgrounds and sounds from a
// file system for the ebiten front end.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	cfg "github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/logging"
)

var logger = logging.New("assets")

var placeholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 160}

// Frames hands out animation frames. Sprite sheets are horizontal strips
// stored at images/<dir>/<state>.png; a sheet that cannot be loaded is
// logged once and replaced by a flat placeholder.
type Frames struct {
	fsys       fs.FS
	sheets     map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

func NewFrames(fsys fs.FS) *Frames {
	return &Frames{
		fsys:       fsys,
		sheets:     make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// Image loads a whole image, or nil if it is missing.
func (l *Frames) Image(path string) *ebiten.Image {
	if img, ok := l.sheets[path]; ok {
		return img
	}
	if l.missing[path] {
		return nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		l.markMissing(path, err)
		return nil
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		l.markMissing(path, err)
		return nil
	}

	l.sheets[path] = img
	return img
}

// Frame returns frame index of state from the sheet in dir. Frames are
// w x h cells laid out left to right.
func (l *Frames) Frame(dir string, state cfg.StateID, index, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state, index)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	var frame *ebiten.Image
	sheet := l.Image(fmt.Sprintf("images/%s/%s.png", dir, state))
	if sheet != nil && (index+1)*w <= sheet.Bounds().Dx() {
		frame = sheet.SubImage(image.Rect(index*w, 0, (index+1)*w, h)).(*ebiten.Image)
	} else {
		frame = l.placeholder(w, h)
	}

	l.frameCache[key] = frame
	return frame
}

func (l *Frames) placeholder(w, h int) *ebiten.Image {
	key := fmt.Sprintf("placeholder/%dx%d", w, h)
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(placeholderColor)
	l.frameCache[key] = img
	return img
}

func (l *Frames) markMissing(path string, err error) {
	l.missing[path] = true
	logger.Warn("asset missing", "path", path, "err", err)
}

// SheetDir is the sprite sheet directory of an actor kind. variant is the
// enemy variant or fire type.
func SheetDir(kind, variant string) string {
	if variant == "" {
		return kind
	}
	return kind + "/" + variant
}
