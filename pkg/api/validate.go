package api

import (
	"strings"
	"unicode/utf8"

	"github.com/conceptreel/conceptreel/pkg/model"
)

// maxConceptChars is the submission boundary from spec.md §6 and §8:
// 2000 accepted, 2001 rejected with 400.
const maxConceptChars = 2000

// validateGenerateRequest checks req against the gateway's input
// contract, returning the first violation found.
func validateGenerateRequest(req GenerateRequest) error {
	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		return ErrConceptEmpty
	}
	if utf8.RuneCountInString(concept) > maxConceptChars {
		return ErrConceptTooLong
	}
	if !model.Style(req.Style).Valid() {
		return ErrInvalidStyle
	}
	if !model.Quality(req.Quality).Valid() {
		return ErrInvalidQuality
	}
	return nil
}
