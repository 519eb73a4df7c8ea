package model

// BeatType enumerates the named narrative/visual units a Beat may be.
type BeatType string

const (
	BeatIntro          BeatType = "intro"
	BeatSetup          BeatType = "setup"
	BeatExplanation    BeatType = "explanation"
	BeatReveal         BeatType = "reveal"
	BeatDemonstration  BeatType = "demonstration"
	BeatClimax         BeatType = "climax"
	BeatResolution     BeatType = "resolution"
	BeatTransition     BeatType = "transition"
	BeatConclusion     BeatType = "conclusion"
	BeatPause          BeatType = "pause"
)

// Tone enumerates the emotional register a Beat carries.
type Tone string

const (
	ToneCurious       Tone = "curious"
	ToneCalm          Tone = "calm"
	ToneContemplative Tone = "contemplative"
	ToneExcited       Tone = "excited"
	ToneTriumphant    Tone = "triumphant"
	ToneNeutral       Tone = "neutral"
)

// Keyframe is a camera/view state at a point in time, interpolated between
// by Easing.
type Keyframe struct {
	Time     float64  `json:"time"`
	Position [3]float64 `json:"position"`
	Is3D     bool     `json:"is_3d"`
	Zoom     float64  `json:"zoom"`
	Rotation float64  `json:"rotation"`
	Phi      *float64 `json:"phi,omitempty"`
	Theta    *float64 `json:"theta,omitempty"`
	Easing   string   `json:"easing"`
	Duration float64  `json:"duration"`
}

// Beat is a contiguous, timed narrative/visual unit of the composition.
type Beat struct {
	ID         string     `json:"id"`
	Time       float64    `json:"time"`
	Duration   float64    `json:"duration"`
	Type       BeatType   `json:"type"`
	Tone       Tone       `json:"tone"`
	Animations []string   `json:"animations"`
	ContentIDs []string   `json:"content_ids"`
	Camera     *Keyframe  `json:"camera_keyframe,omitempty"`
}

// Typography holds the font choices and size scale for a style preset.
type Typography struct {
	FontName  string             `json:"font_name"`
	BaseSize  float64            `json:"base_size"`
	Scales    map[string]float64 `json:"scales"`
}

// VisualDesign is the complete visual plan for a job's render.
type VisualDesign struct {
	ColorPalette    []string          `json:"color_palette"`
	CustomColors    map[string]string `json:"custom_colors,omitempty"`
	Typography      Typography        `json:"typography"`
	TimingBeats     []Beat            `json:"timing_beats"`
	CameraKeyframes []Keyframe        `json:"camera_keyframes"`
	Transitions     []string          `json:"transitions"`
	Is3D            bool              `json:"is_3d"`
	TotalDuration   float64           `json:"total_duration"`
}
