package cli

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/config"
	"github.com/SeamusWaldron/gocube_animator/internal/journal"
	"github.com/SeamusWaldron/gocube_animator/internal/logging"
)

// loadConfig reads the config file and applies global flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if recordMoves {
		cfg.Journal.Enabled = true
	}
	if dbPath != "" {
		cfg.Journal.Path = dbPath
	}
	// Pin the seed so a journaled run can be reproduced.
	if cfg.Source.Seed == 0 {
		cfg.Source.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// newAnimator builds an animator from the config.
func newAnimator(cfg *config.Config, logger gocube.Logger) (*gocube.Animator, error) {
	opts := []gocube.Option{
		gocube.WithDuration(cfg.Animation.Duration()),
		gocube.WithSettleDelay(cfg.Animation.Settle()),
		gocube.WithEasing(cfg.Animation.Easing),
		gocube.WithSpacing(cfg.Animation.Spacing),
		gocube.WithSnap(cfg.Animation.Snap),
		gocube.WithLogger(logger),
	}
	if cfg.Source.Mode == "script" {
		moves, err := gocube.ParseMoves(cfg.Source.Moves)
		if err != nil {
			return nil, fmt.Errorf("invalid script: %w", err)
		}
		opts = append(opts, gocube.WithScript(moves, cfg.Source.Loop))
	} else {
		opts = append(opts, gocube.WithSeed(cfg.Source.Seed))
	}
	return gocube.NewAnimator(opts...)
}

// openJournal opens the journal database named by the config.
func openJournal(cfg *config.Config) (*journal.DB, error) {
	if cfg.Journal.Path != "" {
		return journal.Open(cfg.Journal.Path)
	}
	return journal.OpenDefault()
}

// session ties an animator to its optional journal recorder.
type session struct {
	anim   *gocube.Animator
	logger *logging.Logger
	db     *journal.DB
	rec    *journal.Recorder
}

// newSession builds the animator and, when enabled, starts a journal run.
func newSession(cfg *config.Config, logger *logging.Logger) (*session, error) {
	anim, err := newAnimator(cfg, logger.With("component", "driver"))
	if err != nil {
		return nil, err
	}
	s := &session{anim: anim, logger: logger}
	if !cfg.Journal.Enabled {
		return s, nil
	}

	db, err := openJournal(cfg)
	if err != nil {
		return nil, err
	}
	script := ""
	if cfg.Source.Mode == "script" {
		script = cfg.Source.Moves
	}
	rec, err := journal.NewRecorder(db, cfg.Source.Mode, cfg.Source.Seed, script, version)
	if err != nil {
		db.Close()
		return nil, err
	}
	anim.OnMove(rec.Observe)
	s.db, s.rec = db, rec
	logger.Info("journal run started", "run_id", rec.RunID(), "path", db.Path())
	return s, nil
}

// Close ends the journal run, if any.
func (s *session) Close() error {
	if s.rec == nil {
		return nil
	}
	defer s.db.Close()
	if err := s.rec.Close(s.anim.Solved()); err != nil {
		return fmt.Errorf("failed to close journal run: %w", err)
	}
	return nil
}
