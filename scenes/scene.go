package scenes

import (
	"image/color"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches the freetype faces
	"golang.org/x/image/font"

	"github.com/perfidia-game/perfidia/assets"
	"github.com/perfidia-game/perfidia/logging"
)

var logger = logging.New("scenes")

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what every scene shares for the lifetime of the game.
type Session struct {
	Changer SceneChanger
	Assets  fs.FS
	Frames  *assets.Frames
	Sound   *assets.SoundBoard

	// Seed fixes the level seeds. 0 picks a fresh seed per level.
	Seed int64
	// RecordDir, when set, receives one replay file per played level.
	RecordDir string
}

func NewSession(changer SceneChanger, fsys fs.FS) *Session {
	return &Session{
		Changer: changer,
		Assets:  fsys,
		Frames:  assets.NewFrames(fsys),
		Sound:   assets.NewSoundBoard(fsys),
	}
}

func (s *Session) seedFor(level int) int64 {
	if s.Seed != 0 {
		return s.Seed + int64(level)
	}
	return time.Now().UnixNano()
}

// frameDT is the length of one ebiten update.
func frameDT() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// drawCentered draws s horizontally centered on the screen with its baseline
// at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
