// perfidia is a side-scrolling descent through nine circles.
//
// Usage:
//
//	perfidia                  - Play from the start screen
//	perfidia replay <file>    - Re-run a recorded level headlessly
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/fonts"
	"github.com/perfidia-game/perfidia/logging"
	"github.com/perfidia-game/perfidia/scenes"
)

var logger = logging.New("perfidia")

var (
	flagAssets     string
	flagConfig     string
	flagLogLevel   string
	flagSeed       int64
	flagStartLevel int
	flagDebug      bool
	flagHitboxes   bool
	flagRecord     string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	session.Changer = g

	if config.Debug.StartingLevel > 1 {
		g.scene = scenes.NewTransitionScene(session, config.Debug.StartingLevel)
	} else {
		g.scene = scenes.NewStartScene(session)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "perfidia",
	Short: "Perfidia - fight your way down through the circles",
	Long: `Perfidia is a 2D side-scrolling action game.

Controls:
  A/D, Left/Right  - Walk
  Shift            - Run
  Space/W/Up       - Jump
  J/X              - Attack
  Enter            - Confirm / skip screens
  Tab              - Skip level (with --debug)

Examples:
  perfidia
  perfidia --assets ./assets --start-level 4
  perfidia --seed 42 --record ./replays
  perfidia replay ./replays/level1-43.replay`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Asset directory (images, audio, fonts, maps)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Level seed base (0 = random per level)")
	rootCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Start directly at this level")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable the level skip key")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Draw collision boxes")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Directory to write one replay per played level")

	rootCmd.AddCommand(replayCmd)
}

// setup runs before every command: logging first, then the config overlay.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.SetLevel(flagLogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	applied, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if applied != "" {
		logger.Info("config loaded", "path", applied)
	}
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagStartLevel > 0 {
		if flagStartLevel > config.Level.Count {
			return fmt.Errorf("start level %d out of range 1..%d", flagStartLevel, config.Level.Count)
		}
		config.Debug.StartingLevel = flagStartLevel
	}
	if flagDebug {
		config.Debug.SkipLevel = true
	}
	if flagHitboxes {
		config.Debug.DrawHitboxes = true
	}
	if flagRecord != "" {
		if err := os.MkdirAll(flagRecord, 0o755); err != nil {
			return fmt.Errorf("record dir: %w", err)
		}
	}

	fsys := os.DirFS(flagAssets)
	if err := fonts.LoadAll(fsys, fonts.DefaultPath); err != nil {
		return err
	}

	session := scenes.NewSession(nil, fsys)
	session.Seed = flagSeed
	session.RecordDir = flagRecord
	session.Sound.Preload()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Perfidia")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	logger.Info("starting", "assets", flagAssets, "level", config.Debug.StartingLevel)
	return ebiten.RunGame(NewGame(session))
}
