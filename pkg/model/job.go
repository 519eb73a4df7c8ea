// Package model holds the plain data types shared across the pipeline:
// jobs, events, knowledge trees, math enrichment, visual design, narrative,
// and job results. These are in-process values, not a wire contract, so
// they carry JSON tags for logging and HTTP responses but no schema
// generator.
package model

import "time"

// Quality is the requested render quality, driving both timeout and
// output-folder selection.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// Valid reports whether q is one of the three known quality tiers.
func (q Quality) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	}
	return false
}

// Style is one of the five fixed visual-style presets.
type Style string

const (
	StyleThreeBlueOneBrown Style = "3blue1brown"
	StyleMinimal           Style = "minimal"
	StyleVibrant           Style = "vibrant"
	StyleAcademic          Style = "academic"
	StyleDark              Style = "dark"
)

// Valid reports whether s is one of the five known presets.
func (s Style) Valid() bool {
	switch s {
	case StyleThreeBlueOneBrown, StyleMinimal, StyleVibrant, StyleAcademic, StyleDark:
		return true
	}
	return false
}

// AllStyles lists every preset, in table order, for callers that need to
// iterate (e.g. validation error messages).
var AllStyles = []Style{StyleThreeBlueOneBrown, StyleMinimal, StyleVibrant, StyleAcademic, StyleDark}

// Job is the unit of work created by the gateway on submission. Its id
// threads through every event published for the job's lifetime.
type Job struct {
	ID           string    `json:"id"`
	Concept      string    `json:"concept"`
	Quality      Quality   `json:"quality"`
	Style        Style     `json:"style"`
	UseSmartMode bool      `json:"use_smart_mode"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is an immutable message published on the event bus. Payload is
// whatever the topic's producer emits; consumers type-assert it against
// the topic's known shape.
type Event struct {
	Topic     string    `json:"topic"`
	JobID     string    `json:"job_id"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}
