// gocube-anim - terminal animator for a 3x3x3 Rubik's Cube.
package main

import (
	"github.com/SeamusWaldron/gocube_animator/internal/cli"
)

func main() {
	cli.Execute()
}
