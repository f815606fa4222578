package fonts

import (
	"fmt"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/perfidia-game/perfidia/logging"
)

type FontName string

const (
	Body  FontName = "body"
	HUD   FontName = "hud"
	Title FontName = "title"
)

// DefaultPath is where the game font lives inside the asset tree.
const DefaultPath = "fonts/alagard.ttf"

var sizes = map[FontName]float64{
	Body:  24,
	HUD:   16,
	Title: 48,
}

var logger = logging.New("fonts")

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll loads the TTF at path from fsys in every configured size. If the
// file is missing or broken every face falls back to basicfont.
func LoadAll(fsys fs.FS, path string) error {
	ttf, err := fs.ReadFile(fsys, path)
	if err == nil {
		for name, size := range sizes {
			if err = LoadFontWithSize(name, ttf, size); err != nil {
				break
			}
		}
	}
	if err != nil {
		logger.Warn("asset missing", "path", path, "err", err)
		for name := range sizes {
			fonts[name] = basicfont.Face7x13
		}
	}
	return err
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
