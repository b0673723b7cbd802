package prompt

import (
	"strings"
	"testing"

	"ai-interview-be/pkg/resume"

	"github.com/stretchr/testify/assert"
)

func TestTopicPromptIncludesFocusAndDifficulty(t *testing.T) {
	p := NewTopicBuilder("Operating Systems", []string{"Scheduling", "Paging"}, "advanced").Build()

	assert.Contains(t, p, "**Operating Systems**")
	assert.Contains(t, p, "Scheduling, Paging")
	assert.Contains(t, p, "Difficulty level: advanced")
	assert.Contains(t, p, difficultyGuides["advanced"])
	assert.NotContains(t, p, "## Coding Questions")
}

func TestTopicPromptUnknownDifficultyFallsBack(t *testing.T) {
	p := NewTopicBuilder("DBMS", nil, "legendary").Build()

	assert.Contains(t, p, "Difficulty level: intermediate")
	assert.Contains(t, p, "Core topics: DBMS")
}

func TestCodingSectionOnlyForDSA(t *testing.T) {
	p := NewTopicBuilder("Data Structures & Algorithms", []string{"Graphs"}, "beginner").Build()

	assert.Contains(t, p, "## Coding Questions")
	assert.True(t, IsCodingTopic("Data Structures & Algorithms"))
	assert.False(t, IsCodingTopic("System Design"))
}

func TestCustomPromptTruncatesProjectsAndExperience(t *testing.T) {
	r := &resume.Structured{
		Name:   "Ada",
		Skills: []string{"Go", "Postgres"},
		Projects: []resume.Project{
			{Name: "p1"}, {Name: "p2"}, {Name: "p3"}, {Name: "p4"}, {Name: "p5"},
		},
		Experience: []resume.Experience{
			{Title: "e1"}, {Title: "e2"}, {Title: "e3"}, {Title: "e4"},
		},
	}

	p := NewCustomBuilder(r, "Build backend services", "Backend Engineer").Build()

	assert.Contains(t, p, "**Ada**")
	assert.Contains(t, p, "**Backend Engineer**")
	assert.Contains(t, p, "Go, Postgres")
	assert.Contains(t, p, "Build backend services")
	assert.Contains(t, p, "p4")
	assert.NotContains(t, p, "p5")
	assert.Contains(t, p, "e3 at")
	assert.NotContains(t, p, "e4 at")
}

func TestCustomPromptDefaults(t *testing.T) {
	p := NewCustomBuilder(nil, "", "").Build()

	assert.Contains(t, p, "the candidate")
	assert.Contains(t, p, "the described role")
	assert.Contains(t, p, "not specified")
	assert.Equal(t, 2, strings.Count(p, "Not specified"))
}

func TestBehavioralPrompt(t *testing.T) {
	p := Behavioral()

	assert.Contains(t, p, "STAR")
	assert.Contains(t, p, "## Voice Clarity")
}
