package codegen

import (
	"errors"
	"strings"
)

// ErrNoMainScene signals that generated code never defines MainScene.
var ErrNoMainScene = errors.New("codegen: generated code has no MainScene class")

// ExtractCode pulls the contents of the first fenced code block out of
// raw if present, otherwise returns raw with surrounding whitespace
// trimmed.
func ExtractCode(raw string) string {
	const fence = "```"
	start := strings.Index(raw, fence)
	if start < 0 {
		return strings.TrimSpace(raw)
	}
	rest := raw[start+len(fence):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, fence)
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// ValidateMainScene returns ErrNoMainScene when code never defines a
// scene class named MainScene.
func ValidateMainScene(code string) error {
	if strings.Contains(code, "class MainScene") {
		return nil
	}
	return ErrNoMainScene
}
