// Package common defines sentinel errors shared by the caesarlite
// collaborators (command line, shell, form and file I/O). The cipher engine
// itself never fails. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input validation errors, reported before the engine is invoked.
	ErrInvalidShift     = errors.New("shift must be an integer")
	ErrUnknownMode      = errors.New("mode must be encrypt or decrypt")
	ErrNoInput          = errors.New("no input text provided")
	ErrConflictingInput = errors.New("use either text or an input file, not both")

	// File collaborator errors, reported before any I/O is attempted.
	ErrMissingInputPath  = errors.New("input file path is required")
	ErrMissingOutputPath = errors.New("output file path is required")

	// Configuration errors.
	ErrUnknownLogBackend = errors.New("unknown log backend")
)
