package transcript

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitJoinsFragments(t *testing.T) {
	acc := NewAccumulator()
	acc.AppendFragment(RoleInterviewer, "Hello, ")
	acc.AppendFragment(RoleInterviewer, "tell me about yourself.")

	e, ok := acc.CommitInterviewerTurn(3.456)
	assert.True(t, ok)
	assert.Equal(t, RoleInterviewer, e.Role)
	assert.Equal(t, "Hello, tell me about yourself.", e.Content)
	assert.Equal(t, 3.46, e.Timestamp)
	assert.Equal(t, "", acc.Pending(RoleInterviewer))
}

func TestCommitEmptyBufferIsNoop(t *testing.T) {
	acc := NewAccumulator()
	acc.AppendFragment(RoleCandidate, "")

	_, ok := acc.CommitCandidateTurn(1)
	assert.False(t, ok)
	_, ok = acc.CommitInterviewerTurn(1)
	assert.False(t, ok)
	assert.Equal(t, 0, acc.Len())
}

func TestCommitKeepsFragmentsVerbatim(t *testing.T) {
	acc := NewAccumulator()
	acc.AppendFragment(RoleInterviewer, " Hello")
	acc.AppendFragment(RoleInterviewer, " world ")

	e, ok := acc.CommitInterviewerTurn(1)
	assert.True(t, ok)
	assert.Equal(t, " Hello world ", e.Content)

	acc.AppendFragment(RoleCandidate, " ")
	e, ok = acc.CommitCandidateTurn(2)
	assert.True(t, ok)
	assert.Equal(t, " ", e.Content)
	assert.Equal(t, "", acc.Pending(RoleCandidate))
	assert.Equal(t, 2, acc.Len())
}

func TestBuffersAreIndependentPerRole(t *testing.T) {
	acc := NewAccumulator()
	acc.AppendFragment(RoleCandidate, "I built ")
	acc.AppendFragment(RoleInterviewer, "Go on.")
	acc.AppendFragment(RoleCandidate, "a compiler.")

	_, ok := acc.CommitCandidateTurn(2)
	assert.True(t, ok)
	_, ok = acc.CommitInterviewerTurn(2.5)
	assert.True(t, ok)

	entries := acc.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "I built a compiler.", entries[0].Content)
	assert.Equal(t, RoleCandidate, entries[0].Role)
	assert.Equal(t, "Go on.", entries[1].Content)
}

func TestEntriesReturnsCopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Append(RoleCandidate, "final text", 1)

	entries := acc.Entries()
	entries[0].Content = "mutated"

	assert.Equal(t, "final text", acc.Entries()[0].Content)
}

func TestConcurrentAppendKeepsAllEntries(t *testing.T) {
	acc := NewAccumulator()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Append(RoleCandidate, "x", 0)
			acc.AppendFragment(RoleInterviewer, "y")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, acc.Len())
	assert.Len(t, acc.Pending(RoleInterviewer), 50)
}
