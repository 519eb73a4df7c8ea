package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGenerateRequestBoundaries(t *testing.T) {
	base := GenerateRequest{Style: "3blue1brown", Quality: "low"}

	ok := base
	ok.Concept = strings.Repeat("x", 2000)
	assert.NoError(t, validateGenerateRequest(ok))

	tooLong := base
	tooLong.Concept = strings.Repeat("x", 2001)
	assert.ErrorIs(t, validateGenerateRequest(tooLong), ErrConceptTooLong)

	empty := base
	empty.Concept = "   "
	assert.ErrorIs(t, validateGenerateRequest(empty), ErrConceptEmpty)
}

func TestValidateGenerateRequestEnums(t *testing.T) {
	req := GenerateRequest{Concept: "derivative", Style: "not-a-style", Quality: "low"}
	assert.ErrorIs(t, validateGenerateRequest(req), ErrInvalidStyle)

	req = GenerateRequest{Concept: "derivative", Style: "minimal", Quality: "ultra"}
	assert.ErrorIs(t, validateGenerateRequest(req), ErrInvalidQuality)

	req = GenerateRequest{Concept: "derivative", Style: "minimal", Quality: "medium"}
	assert.NoError(t, validateGenerateRequest(req))
}
