// Package cli implements the command-line interface for gocube-anim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile     string
	dbPath      string
	recordMoves bool
	verbose     bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-anim",
	Short: "Rubik's Cube move animator",
	Long: `gocube-anim - animates a 3x3x3 cube in the terminal, one layer turn at a time.

Moves are drawn at random (never the same face twice in a row) or played
from a script. Each move updates the logical cube first, then turns the
matching layer on screen.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Journal database path (default: ~/.gocube_animator/journal.db)")
	rootCmd.PersistentFlags().BoolVar(&recordMoves, "journal", false, "Record moves to the journal database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
