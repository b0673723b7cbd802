package transcript

import (
	"strings"
	"sync"
)

type Role string

const (
	RoleInterviewer Role = "interviewer"
	RoleCandidate   Role = "candidate"
)

// Entry is one finalized utterance. Timestamp is seconds since session start.
type Entry struct {
	Role      Role    `json:"role"`
	Content   string  `json:"content"`
	Timestamp float64 `json:"timestamp"`
}

// Accumulator buffers partial fragments per role and commits them into an
// append-only entry list at turn boundaries.
type Accumulator struct {
	mu          sync.Mutex
	entries     []Entry
	interviewer strings.Builder
	candidate   strings.Builder
}

func NewAccumulator() *Accumulator {
	return &Accumulator{entries: make([]Entry, 0)}
}

// AppendFragment adds streamed text to the partial buffer of role.
func (a *Accumulator) AppendFragment(role Role, text string) {
	if text == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buffer(role).WriteString(text)
}

func (a *Accumulator) CommitInterviewerTurn(offset float64) (Entry, bool) {
	return a.commit(RoleInterviewer, offset)
}

func (a *Accumulator) CommitCandidateTurn(offset float64) (Entry, bool) {
	return a.commit(RoleCandidate, offset)
}

// Append records already-final text directly, bypassing the partial buffers.
func (a *Accumulator) Append(role Role, content string, offset float64) Entry {
	e := Entry{Role: role, Content: content, Timestamp: round2(offset)}
	a.mu.Lock()
	a.entries = append(a.entries, e)
	a.mu.Unlock()
	return e
}

// Pending returns the current partial text of role.
func (a *Accumulator) Pending(role Role) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer(role).String()
}

// Entries returns a copy of the committed entries in append order.
func (a *Accumulator) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

func (a *Accumulator) commit(role Role, offset float64) (Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf := a.buffer(role)
	if buf.Len() == 0 {
		return Entry{}, false
	}
	content := buf.String()
	buf.Reset()

	e := Entry{Role: role, Content: content, Timestamp: round2(offset)}
	a.entries = append(a.entries, e)
	return e, true
}

func (a *Accumulator) buffer(role Role) *strings.Builder {
	if role == RoleCandidate {
		return &a.candidate
	}
	return &a.interviewer
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
