package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator/internal/notation"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <moves>",
	Short: "Show the layer rotation each move performs",
	Long: `Decode moves into axis, layer and angle.

Angles are clockwise as seen from the positive end of the axis (X right,
Y up, Z front), so U is +90 on Y and D is -90 on Y.

Example:
  gocube-anim decode "R U2 F'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	moves, err := notation.ParseSequence(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-5s %-4s %-6s %8s  %s\n", "MOVE", "AXIS", "LAYER", "DEGREES", "DESCRIPTION")
	for _, m := range moves {
		r := notation.Decode(m)
		fmt.Fprintf(out, "%-5s %-4s %+-6d %+8.0f  %s\n",
			m.Notation(), r.Axis, r.Layer, r.Angle*180/math.Pi, notation.Describe(m))
	}
	return nil
}
