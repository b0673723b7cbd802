package resume

import (
	"context"
	"errors"
	"testing"

	"ai-interview-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	out  string
	err  error
	opts llm.Options
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.opts = llm.Apply(llm.Options{}, options...)
	return s.out, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestParseDecodesFencedJSON(t *testing.T) {
	p := &stubProvider{out: "```json\n{\"name\":\"Ada\",\"skills\":[\"Go\"],\"education\":\"BSc\"}\n```"}

	s, err := NewParser(p).Parse(context.Background(), "Ada, Go developer")

	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Name)
	assert.Equal(t, []string{"Go"}, s.Skills)
	assert.NotNil(t, s.Projects)
	assert.Empty(t, s.RawParse)
	assert.True(t, p.opts.JSON)
	assert.Contains(t, p.opts.SystemInstruction, "resume parser")
}

func TestParseFallsBackOnGarbage(t *testing.T) {
	s, err := NewParser(&stubProvider{out: "sorry, I cannot"}).Parse(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", s.Name)
	assert.Equal(t, "sorry, I cannot", s.RawParse)
}

func TestParsePropagatesModelError(t *testing.T) {
	_, err := NewParser(&stubProvider{err: errors.New("quota")}).Parse(context.Background(), "text")
	assert.ErrorContains(t, err, "quota")
}
