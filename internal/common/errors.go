// Package common defines shared constants and sentinel errors used across
// accountkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("duplicate email")

	// Wiring errors (unknown config values).
	ErrorUnsupportedBackend    = errors.New("unsupported storage backend")
	ErrorUnsupportedHashScheme = errors.New("unsupported hash scheme")
)
