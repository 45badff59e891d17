// Package common defines shared constants and sentinel errors used across
// roster layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorNotPersisted = errors.New("record kept in memory but not persisted")

	// Validation errors.
	ErrorCategoryNotAllowed = errors.New("category not allowed")
	ErrorInvalidRecord      = errors.New("invalid record")

	// Input errors.
	ErrorEmptyInput = errors.New("empty input")
)
