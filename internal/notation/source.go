package notation

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// Source supplies the next move to animate.
type Source interface {
	// Next returns the move to play after previous (nil on the first call).
	// ok is false once the source is exhausted.
	Next(previous *types.Move) (m types.Move, ok bool)
}

// RandomSource produces an endless stream of random moves where no move
// turns the same face as the one before it.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource with a deterministic seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next implements Source. It never runs out.
func (s *RandomSource) Next(previous *types.Move) (types.Move, bool) {
	return Random(s.rng, previous), true
}

// ScriptSource replays an externally supplied move list.
// The face non-repeat rule is not applied: the list is played as given.
type ScriptSource struct {
	moves []types.Move
	pos   int
	loop  bool
}

// NewScriptSource creates a source over moves. With loop set, the list
// restarts from the beginning once exhausted.
func NewScriptSource(moves []types.Move, loop bool) *ScriptSource {
	cp := make([]types.Move, len(moves))
	copy(cp, moves)
	return &ScriptSource{moves: cp, loop: loop}
}

// Next implements Source.
func (s *ScriptSource) Next(_ *types.Move) (types.Move, bool) {
	if len(s.moves) == 0 {
		return types.Move{}, false
	}
	if s.pos >= len(s.moves) {
		if !s.loop {
			return types.Move{}, false
		}
		s.pos = 0
	}
	m := s.moves[s.pos]
	s.pos++
	return m, true
}

// Remaining returns how many moves are left before the list wraps or ends.
func (s *ScriptSource) Remaining() int {
	return len(s.moves) - s.pos
}
