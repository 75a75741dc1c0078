package ecosystem

import "errors"

var (
	// ErrDuplicateName is returned when a species name is already taken.
	ErrDuplicateName = errors.New("species already exists")

	// ErrNotFound is returned when a name is absent from the registry.
	ErrNotFound = errors.New("species not found")

	// ErrInvalidCategory is returned for a category outside the closed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidName is returned for a blank species name.
	ErrInvalidName = errors.New("invalid species name")
)
