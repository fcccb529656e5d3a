package tools

import "errors"

// Catalog construction errors.
var (
	// ErrEmptySlug is returned when a tool or alias has a blank slug.
	ErrEmptySlug = errors.New("tool slug cannot be empty")

	// ErrDuplicateTool is returned when two tools share a slug.
	ErrDuplicateTool = errors.New("duplicate tool slug")

	// ErrMissingTitle is returned when a tool has no display title.
	ErrMissingTitle = errors.New("tool title cannot be empty")

	// ErrAliasCollision is returned when a legacy alias is also a canonical slug.
	ErrAliasCollision = errors.New("legacy alias collides with canonical slug")

	// ErrUnknownAliasTarget is returned when an alias does not point at a canonical slug.
	ErrUnknownAliasTarget = errors.New("legacy alias targets unknown tool")

	// ErrInvalidLegacyPath is returned for legacy paths that are not absolute
	// or that live under the tool section itself.
	ErrInvalidLegacyPath = errors.New("invalid legacy path")

	// ErrNilCatalog is returned when a resolver is given no catalog.
	ErrNilCatalog = errors.New("catalog cannot be nil")

	// ErrDuplicateLegacyPath is returned when two tools claim the same legacy path.
	ErrDuplicateLegacyPath = errors.New("duplicate legacy path")
)
