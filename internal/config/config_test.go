package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("RELAY_SILENCE_TIMEOUT_SECONDS", "7.5")
	t.Setenv("FEEDBACK_AUTO_GENERATE", "true")
	t.Setenv("GOOGLE_GENAI_USE_VERTEXAI", "false")
	t.Setenv("RELAY_INPUT_SAMPLE_RATE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 7.5, cfg.Relay.SilenceTimeoutSeconds)
	assert.True(t, cfg.Relay.AutoFeedback)
	assert.False(t, cfg.Ai.UseVertex)
	assert.Equal(t, 16000, cfg.Relay.InputSampleRate)
	assert.Zero(t, cfg.Relay.SpeechRMS)
}
