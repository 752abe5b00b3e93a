// Package uid provides string identifier generation for entities and
// correlation IDs.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate returns a new unique identifier.
	Generate() string
}
