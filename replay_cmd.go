package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perfidia-game/perfidia/config"
	"github.com/perfidia-game/perfidia/replay"
	"github.com/perfidia-game/perfidia/shared/leveldata"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded level without a window",
	Long: `Load a replay written with --record and play it back against the
level map from the asset directory. Prints where the player ended up.

Examples:
  perfidia replay ./replays/level1-43.replay
  perfidia replay --assets ./assets ./replays/level3-45.replay`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	rec, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}

	lvl, err := leveldata.LoadLevel(os.DirFS(flagAssets), leveldata.LevelPath(config.Level.Dir, rec.Level))
	if err != nil {
		return err
	}
	lvl.Number = rec.Level

	res, err := replay.Run(lvl, rec)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "level %d: %s after %d ticks (%.2fs), player at (%.0f, %.0f) with %d hp\n",
		rec.Level, res.Signal, res.Ticks, res.Clock, res.X, res.Y, res.Health)
	return nil
}
