package types

import "errors"

// ErrContractViolation marks a programming error in how the engine was driven:
// an unknown token, a double group, an empty layer selection. These are raised
// as panics wrapping this error and are never recovered by the engine.
var ErrContractViolation = errors.New("gocube: contract violation")
