package document

import "errors"

var (
	// ErrInvalidKind is returned when an element is constructed with a kind outside
	// the known set. It signals a programming error, not bad user input.
	ErrInvalidKind = errors.New("invalid element kind")

	// ErrNotFound is returned when an update targets an id missing from the scene.
	ErrNotFound = errors.New("element not found")

	// ErrDuplicateID is returned when two elements of a scene share an id.
	ErrDuplicateID = errors.New("duplicate element id")
)
