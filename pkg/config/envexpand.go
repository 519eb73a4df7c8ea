package config

import "os"

// ExpandEnv expands environment variables in YAML content using Go's
// standard library, supporting both ${VAR} and $VAR syntax. Verbatim
// pattern from the teacher's pkg/config/envexpand.go: missing variables
// expand to an empty string, left for validation to catch.
func ExpandEnv(data []byte) []byte {
	return []byte(os.ExpandEnv(string(data)))
}
