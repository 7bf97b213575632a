package gocube

import (
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/internal/scene"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation

	// Programming errors. Operations that break the pivot or cube protocol
	// panic with an error wrapping this value.
	ErrContractViolation = types.ErrContractViolation

	// Scene errors
	ErrUnknownNode = scene.ErrUnknownNode
)
