package journal

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// MoveRecord is a completed move as stored in the journal.
type MoveRecord struct {
	MoveID   int64
	RunID    string
	Index    int
	Move     types.Move
	Notation string
	Rotation types.Rotation
	TsMs     int64 // driver clock when the move completed
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a completed move and bumps the run's move count.
func (r *MoveRepository) Create(runID string, index int, m types.Move, rot types.Rotation, tsMs int64) (int64, error) {
	var id int64
	err := r.db.Transaction(func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO moves (run_id, move_index, face, turn, notation, axis, layer, angle, ts_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, index, string(m.Face), int(m.Turn), m.Notation(), rot.Axis.String(), rot.Layer, rot.Angle, tsMs)
		if err != nil {
			return fmt.Errorf("failed to create move: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get move ID: %w", err)
		}
		if _, err := tx.Exec(`UPDATE runs SET move_count = move_count + 1 WHERE run_id = ?`, runID); err != nil {
			return fmt.Errorf("failed to update move count: %w", err)
		}
		return nil
	})
	return id, err
}

// ListByRun returns a run's moves in play order.
func (r *MoveRepository) ListByRun(runID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, run_id, move_index, face, turn, notation, axis, layer, angle, ts_ms
		FROM moves
		WHERE run_id = ?
		ORDER BY move_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var out []MoveRecord
	for rows.Next() {
		var rec MoveRecord
		var face, axis string
		var turn int
		err := rows.Scan(&rec.MoveID, &rec.RunID, &rec.Index, &face, &turn, &rec.Notation,
			&axis, &rec.Rotation.Layer, &rec.Rotation.Angle, &rec.TsMs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		rec.Move = types.Move{Face: types.Face(face), Turn: types.Turn(turn)}
		rec.Rotation.Axis = axisFromString(axis)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Moves returns just the moves of a run, ready to replay.
func (r *MoveRepository) Moves(runID string) ([]types.Move, error) {
	recs, err := r.ListByRun(runID)
	if err != nil {
		return nil, err
	}
	moves := make([]types.Move, len(recs))
	for i, rec := range recs {
		moves[i] = rec.Move
	}
	return moves, nil
}

func axisFromString(s string) types.Axis {
	switch s {
	case "y":
		return types.AxisY
	case "z":
		return types.AxisZ
	default:
		return types.AxisX
	}
}
