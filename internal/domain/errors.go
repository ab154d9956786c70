// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a task is created without a title.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of
	// the recognized status values.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)
