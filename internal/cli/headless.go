package cli

import (
	"context"
	"errors"
	"math"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/logging"
)

var headlessMoves int

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the move loop without a display, logging each move",
	Long: `Run the animation loop at the configured frame rate without drawing it.
Each completed move is logged. The loop stops after --moves moves (0 runs
until interrupted) and always finishes the move in flight first.`,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVarP(&headlessMoves, "moves", "n", 0, "Stop after this many moves (0 = unbounded)")
	rootCmd.AddCommand(headlessCmd)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging, version)
	if err != nil {
		return err
	}
	defer logger.Close()

	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.anim.OnMove(func(ev gocube.MoveEvent) {
		if ev.Kind != gocube.MoveCompleted {
			return
		}
		logger.Info("move",
			"index", ev.Index,
			"move", ev.Move.Notation(),
			"axis", ev.Rotation.Axis.String(),
			"layer", ev.Rotation.Layer,
			"degrees", math.Round(ev.Rotation.Angle*180/math.Pi),
			"elapsed", ev.Elapsed,
		)
		if headlessMoves > 0 && ev.Index+1 >= headlessMoves {
			cancel()
		}
	})

	logger.Info("animation started", "mode", cfg.Source.Mode, "seed", cfg.Source.Seed, "fps", cfg.Animation.FPS)
	runErr := s.anim.Run(ctx, cfg.Animation.FPS)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	logger.Info("animation stopped", "moves", s.anim.Count(), "solved", s.anim.Solved(), "elapsed", s.anim.Elapsed())

	if err := s.Close(); err != nil {
		return err
	}
	return runErr
}
