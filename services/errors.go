package services

import "errors"

// Typed errors returned by the service layer. Controllers map these onto
// HTTP statuses; none of them is fatal.
var (
	// ErrNotFound means a referenced employee, module or record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrNotCompleted means a certificate was requested before completion
	ErrNotCompleted = errors.New("module not completed")

	// ErrAlreadyCompleted means a quiz submission arrived for a completed module
	ErrAlreadyCompleted = errors.New("module already completed")

	// ErrConflict means concurrent writes kept colliding on the same record
	ErrConflict = errors.New("progress record is being updated, try again")
)
