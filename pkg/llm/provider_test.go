package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```\n{\"a\":1}"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1}\n"))
}

func TestApplyOptions(t *testing.T) {
	o := Apply(Options{Temperature: 0.4, Model: "base"}, WithModel("other"), WithJSON(), WithSystemInstruction("be terse"))

	assert.Equal(t, "other", o.Model)
	assert.True(t, o.JSON)
	assert.Equal(t, "be terse", o.SystemInstruction)
	assert.Equal(t, 0.4, o.Temperature)
}
