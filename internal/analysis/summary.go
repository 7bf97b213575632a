package analysis

import (
	"github.com/SeamusWaldron/gocube_animator/internal/journal"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// RunSummary contains statistics for one journaled run.
type RunSummary struct {
	TotalMoves     int                `json:"total_moves"`
	QuarterTurns   int                `json:"quarter_turns"` // half turns count twice
	FaceCounts     map[types.Face]int `json:"face_counts"`
	TurnCounts     map[types.Turn]int `json:"turn_counts"`
	RepeatedFaces  int                `json:"repeated_faces"` // adjacent moves on the same face
	DurationMs     int64              `json:"duration_ms"`
	MovesPerSecond float64            `json:"moves_per_second"`
	AvgGapMs       float64            `json:"avg_gap_ms"`
	LongestGapMs   int64              `json:"longest_gap_ms"`
}

// Summarize computes statistics for a run's moves in play order. Timestamps
// are the driver clock at each move's completion.
func Summarize(recs []journal.MoveRecord) *RunSummary {
	s := &RunSummary{
		TotalMoves: len(recs),
		FaceCounts: make(map[types.Face]int),
		TurnCounts: make(map[types.Turn]int),
	}
	if len(recs) == 0 {
		return s
	}

	var gaps int64
	for i, rec := range recs {
		s.FaceCounts[rec.Move.Face]++
		s.TurnCounts[rec.Move.Turn]++
		if rec.Move.Turn == types.Turn180 {
			s.QuarterTurns += 2
		} else {
			s.QuarterTurns++
		}
		if i == 0 {
			continue
		}
		if rec.Move.Face == recs[i-1].Move.Face {
			s.RepeatedFaces++
		}
		gap := rec.TsMs - recs[i-1].TsMs
		gaps += gap
		s.LongestGapMs = max(s.LongestGapMs, gap)
	}

	s.DurationMs = recs[len(recs)-1].TsMs
	if s.DurationMs > 0 {
		s.MovesPerSecond = float64(len(recs)) / (float64(s.DurationMs) / 1000)
	}
	if len(recs) > 1 {
		s.AvgGapMs = float64(gaps) / float64(len(recs)-1)
	}
	return s
}
