package domain

import "errors"

// Failure classes for the display loop. Catalog, fetch and resolution
// failures are recoverable: the loop degrades the affected slide or
// cycle and keeps running. Render backend failures are fatal: the
// process has no usable display surface left.
var (
	// ErrCatalogQuery marks a failed whole-cycle catalog query
	ErrCatalogQuery = errors.New("catalog query failed")

	// ErrImageFetch marks a failed artwork fetch or decode
	ErrImageFetch = errors.New("image fetch failed")

	// ErrMetadataResolution marks a failed show-record lookup
	ErrMetadataResolution = errors.New("metadata resolution failed")

	// ErrRenderBackend marks an unusable display surface
	ErrRenderBackend = errors.New("render backend failure")
)
