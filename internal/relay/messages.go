package relay

import "ai-interview-be/pkg/emotion"

const (
	clientTranscript       = "transcript"
	clientFrame            = "frame"
	clientCodeShare        = "code_share"
	clientCodeRunResult    = "code_run_result"
	clientPlaybackComplete = "playback_complete"
	clientEnd              = "end"
)

const (
	EventStatus       = "status"
	EventError        = "error"
	EventReady        = "ready"
	EventAudio        = "audio"
	EventTranscript   = "transcript"
	EventTurnComplete = "turn_complete"
	EventEmotion      = "emotion"
)

// clientMessage is the union of all JSON text frames a browser may send.
type clientMessage struct {
	Type          string `json:"type"`
	Content       string `json:"content"`
	Data          string `json:"data"`
	Code          string `json:"code"`
	Language      string `json:"language"`
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Status        string `json:"status"`
}

type StatusEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ReadyEvent struct {
	Type string `json:"type"`
}

type AudioEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type TranscriptEvent struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Partial bool   `json:"partial"`
}

type TurnCompleteEvent struct {
	Type string `json:"type"`
	Role string `json:"role"`
}

type EmotionEvent struct {
	Type      string          `json:"type"`
	Timestamp float64         `json:"timestamp"`
	Data      *emotion.Result `json:"data"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
