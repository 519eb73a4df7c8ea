package api

import "errors"

// ErrConceptEmpty is returned by validateGenerateRequest when concept is
// blank after trimming.
var ErrConceptEmpty = errors.New("api: concept must not be empty")

// ErrConceptTooLong is returned when concept exceeds the 2000-character
// boundary from spec.md §6.
var ErrConceptTooLong = errors.New("api: concept exceeds 2000 characters")

// ErrInvalidStyle is returned for a style outside the five known presets.
var ErrInvalidStyle = errors.New("api: invalid style")

// ErrInvalidQuality is returned for a quality outside low/medium/high.
var ErrInvalidQuality = errors.New("api: invalid quality")

// ErrNoProviderAvailable is returned at submission time when the provider
// federation has no available adapter at all — surfaced as 503 per
// spec.md §6, distinct from a mid-job provider failure (which the
// pipeline always converts into a stored video.failed result instead of
// an HTTP error).
var ErrNoProviderAvailable = errors.New("api: no LLM provider available")
