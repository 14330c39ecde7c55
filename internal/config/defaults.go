// Package config provides centralized configuration constants for taskpanel.
// All default values should be defined here to ensure a single source of truth.
package config

// Panel defaults
const (
	// DefaultTitle is the heading drawn at the top of the panel
	DefaultTitle = "Tasks To Do"

	// DefaultWidth is the outer panel width in cells
	DefaultWidth = 56

	// DefaultAccent is the ANSI-256 colour used for the active chip and cursor (purple)
	DefaultAccent = "99"

	// DefaultFilter is the filter a session starts with
	DefaultFilter = "All"
)

// Task id schemes
const (
	// IDSchemeUUID generates random v4 UUIDs
	IDSchemeUUID = "uuid"

	// IDSchemeSequence generates 1, 2, 3, ... so scripted sessions are reproducible
	IDSchemeSequence = "sequence"
)

// DefaultLogLevel is used when log.path is set but log.level is not
const DefaultLogLevel = "info"
