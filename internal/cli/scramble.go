package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator/internal/cube"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/internal/render"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

var (
	scrambleLength int
	scrambleSeed   uint64
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random move sequence and its inverse",
	Long: `Generate a random sequence in which no face turns twice in a row,
the same way the animator draws moves.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 = from the clock)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Print the scrambled cube")
	rootCmd.AddCommand(scrambleCmd)
}

// scramble draws n moves from a seeded random source.
func scramble(seed uint64, n int) []types.Move {
	src := notation.NewRandomSource(seed)
	moves := make([]types.Move, 0, n)
	var prev *types.Move
	for len(moves) < n {
		m, _ := src.Next(prev)
		moves = append(moves, m)
		prev = &moves[len(moves)-1]
	}
	return moves
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 1 {
		return fmt.Errorf("length must be at least 1, got %d", scrambleLength)
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	moves := scramble(seed, scrambleLength)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n", notation.Format(moves))
	fmt.Fprintf(out, "Inverse:  %s\n", notation.Format(notation.Invert(moves)))
	if verbose {
		fmt.Fprintf(out, "Seed:     %d\n", seed)
	}

	if scrambleShow {
		state := cube.New()
		state.ApplyMoves(moves)
		fmt.Fprintln(out)
		fmt.Fprint(out, render.Net(state.Facelets(), 2))
	}
	return nil
}
