package relay

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/pkg/emotion"
	"ai-interview-be/pkg/events"
	"ai-interview-be/pkg/live"
	"ai-interview-be/pkg/prompt"
	"ai-interview-be/pkg/resume"
	"ai-interview-be/pkg/transcript"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const logModule = "SessionRelay"

// SessionStore loads and saves interview records. Load returns nil, nil when
// the session does not exist.
type SessionStore interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.InterviewSession, error)
	LoadTopic(ctx context.Context, id uuid.UUID) (*entity.InterviewTopic, error)
	Save(ctx context.Context, session *entity.InterviewSession) error
	RecordEmotion(ctx context.Context, snapshot *entity.EmotionSnapshot) error
}

type EmotionAnalyzer interface {
	AnalyzeFrame(ctx context.Context, frame string) *emotion.Result
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type FeedbackQueue interface {
	EnqueueFeedback(ctx context.Context, sessionID uuid.UUID) error
}

// ClientSocket is the browser side of a relay. *websocket.Client satisfies it.
type ClientSocket interface {
	ReadMessage() (int, []byte, error)
	SendJSON(v interface{}) bool
	Interrupt()
	Close()
}

type Config struct {
	SilenceTimeout time.Duration
	FrameTimeout   time.Duration
	LeaseTTL       time.Duration
	PersistTimeout time.Duration
	// SpeechRMS is an optional noise gate. When zero every non-empty audio
	// frame counts as the candidate speaking.
	SpeechRMS      float64
}

func DefaultConfig() Config {
	return Config{
		SilenceTimeout: 10 * time.Second,
		FrameTimeout:   10 * time.Second,
		LeaseTTL:       2 * time.Hour,
		PersistTimeout: 10 * time.Second,
	}
}

// Deps are shared by every relay. Events and Feedback are optional.
type Deps struct {
	Store    SessionStore
	Dialer   live.Dialer
	Emotions EmotionAnalyzer
	Leases   contract.SessionLeaseRepository
	Events   EventPublisher
	Feedback FeedbackQueue
	Logger   logger.ILogger
}

type Factory struct {
	deps Deps
	cfg  Config
}

func NewFactory(deps Deps, cfg Config) *Factory {
	return &Factory{deps: deps, cfg: cfg}
}

func (f *Factory) NewRelay(sessionID uuid.UUID, client ClientSocket) *SessionRelay {
	return &SessionRelay{
		deps:      f.deps,
		cfg:       f.cfg,
		log:       f.deps.Logger,
		sessionID: sessionID,
		owner:     uuid.NewString(),
		client:    client,
		upstream:  live.NewSession(f.deps.Dialer, f.deps.Logger),
		state:     NewState(),
	}
}

// SessionRelay bridges one browser connection to one upstream conversation
// for the lifetime of a single interview run.
type SessionRelay struct {
	deps Deps
	cfg  Config
	log  logger.ILogger

	sessionID uuid.UUID
	owner     string
	client    ClientSocket
	upstream  *live.Session
	state     *State

	session     *entity.InterviewSession
	leaseHeld   bool
	recvDone    chan struct{}
	cancel      context.CancelFunc
	finalizeOne sync.Once
}

// Run blocks until the interview ends and always finalizes before returning.
func (r *SessionRelay) Run(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	defer r.finalize()

	fields := map[string]interface{}{"session_id": r.sessionID.String()}

	session, err := r.deps.Store.Load(ctx, r.sessionID)
	if err != nil {
		r.log.Error(logModule, "Failed to load session", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
		r.sendError(constant.ErrSessionNotFound)
		return
	}
	if session == nil {
		r.sendError(constant.ErrSessionNotFound)
		return
	}
	r.session = session

	if !r.claimLease(ctx) {
		r.sendError(constant.ErrSessionInUse)
		return
	}

	if session.Status == entity.InterviewStatusCompleted {
		r.log.Info(logModule, "Re-running completed session", fields)
		session.ResetForRerun()
	}

	instruction := r.buildInstruction(ctx, session)

	startedAt := time.Now()
	session.Status = entity.InterviewStatusActive
	session.StartedAt = &startedAt
	if err := r.deps.Store.Save(ctx, session); err != nil {
		r.log.Warn(logModule, "Failed to mark session active", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
	}

	r.client.SendJSON(StatusEvent{Type: EventStatus, Message: constant.StatusConnecting})

	if err := r.upstream.Connect(ctx, instruction); err != nil {
		r.sendError(constant.ErrUpstreamUnavailable)
		r.revertStart(session)
		return
	}

	r.state.Start(time.Now())
	r.client.SendJSON(StatusEvent{Type: EventStatus, Message: constant.StatusConnected})
	r.client.SendJSON(ReadyEvent{Type: EventReady})
	r.publish(ctx, events.InterviewStarted, map[string]interface{}{
		"session_id":   r.sessionID.String(),
		"session_type": string(session.SessionType),
	})
	r.log.Info(logModule, "Interview started", fields)

	r.recvDone = make(chan struct{})
	go r.receiveLoop(ctx)

	r.upstream.SendText(constant.KickoffInstruction)

	r.clientLoop(ctx)
}

func (r *SessionRelay) claimLease(ctx context.Context) bool {
	if r.deps.Leases == nil {
		return true
	}
	ok, err := r.deps.Leases.Claim(ctx, r.sessionID.String(), r.owner, r.cfg.LeaseTTL)
	if err != nil {
		// lease store outage should not block interviews
		r.log.Warn(logModule, "Lease claim failed, continuing without lease", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
		return true
	}
	r.leaseHeld = ok
	return ok
}

func (r *SessionRelay) releaseLease() {
	if !r.leaseHeld {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.PersistTimeout)
	defer cancel()
	if err := r.deps.Leases.Release(ctx, r.sessionID.String(), r.owner); err != nil {
		r.log.Warn(logModule, "Failed to release lease", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
	}
	r.leaseHeld = false
}

// revertStart puts a session that never reached the interviewer back into
// the created state.
func (r *SessionRelay) revertStart(session *entity.InterviewSession) {
	session.Status = entity.InterviewStatusCreated
	session.StartedAt = nil

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.PersistTimeout)
	defer cancel()
	if err := r.deps.Store.Save(ctx, session); err != nil {
		r.log.Error(logModule, "Failed to revert session status", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
	}
}

func (r *SessionRelay) buildInstruction(ctx context.Context, session *entity.InterviewSession) string {
	switch {
	case session.SessionType == entity.SessionTypeTopic && session.TopicId != nil:
		topic, err := r.deps.Store.LoadTopic(ctx, *session.TopicId)
		if err != nil {
			r.log.Warn(logModule, "Failed to load topic", map[string]interface{}{"topic_id": session.TopicId.String(), "error": err.Error()})
		}
		if topic != nil {
			if topic.Name == prompt.BehavioralTopicName {
				return prompt.Behavioral()
			}
			return prompt.NewTopicBuilder(topic.Name, topic.Subtopics, session.Difficulty).Build()
		}
	case session.SessionType == entity.SessionTypeCustom:
		structured := session.ResumeStructured
		if structured == nil && session.ResumeText != "" {
			structured = resume.Fallback(session.ResumeText)
		}
		return prompt.NewCustomBuilder(structured, session.JobDescription, session.JobTitle).Build()
	}

	return prompt.NewTopicBuilder(prompt.FallbackTopicName, prompt.FallbackSubtopics, session.Difficulty).Build()
}

func (r *SessionRelay) receiveLoop(ctx context.Context) {
	defer close(r.recvDone)

	err := r.upstream.ReceiveResponses(ctx, live.Handlers{
		OnAudio:        r.onUpstreamAudio,
		OnOutputText:   r.onOutputText,
		OnInputText:    r.onInputText,
		OnTurnComplete: r.onTurnComplete,
		OnInterrupted:  r.onInterrupted,
	})

	if !r.state.IsActive() {
		return
	}
	details := map[string]interface{}{"session_id": r.sessionID.String()}
	if err != nil {
		details["error"] = err.Error()
	}
	r.log.Error(logModule, "Upstream ended while interview active", details)
	r.sendError(constant.ErrUpstreamLost)
	if r.state.Deactivate() {
		r.client.Interrupt()
	}
}

func (r *SessionRelay) onUpstreamAudio(pcm []byte) {
	r.client.SendJSON(AudioEvent{Type: EventAudio, Data: base64.StdEncoding.EncodeToString(pcm)})
}

func (r *SessionRelay) onOutputText(text string) {
	r.state.Transcript.AppendFragment(transcript.RoleInterviewer, text)
	r.client.SendJSON(TranscriptEvent{Type: EventTranscript, Role: string(transcript.RoleInterviewer), Content: text, Partial: true})
}

func (r *SessionRelay) onInputText(text string) {
	r.state.Transcript.AppendFragment(transcript.RoleCandidate, text)
	r.state.Watchdog.NotifyUserActivity()
	r.client.SendJSON(TranscriptEvent{Type: EventTranscript, Role: string(transcript.RoleCandidate), Content: text, Partial: true})
}

// onTurnComplete commits the candidate's speech before the interviewer's
// reply so entries stay in conversational order.
func (r *SessionRelay) onTurnComplete() {
	offset := r.state.Elapsed()
	if entry, ok := r.state.Transcript.CommitCandidateTurn(offset); ok {
		r.client.SendJSON(TurnCompleteEvent{Type: EventTurnComplete, Role: string(entry.Role)})
	}
	if entry, ok := r.state.Transcript.CommitInterviewerTurn(offset); ok {
		r.client.SendJSON(TurnCompleteEvent{Type: EventTurnComplete, Role: string(entry.Role)})
	}
}

// onInterrupted closes the interviewer's cut-off turn so the candidate's
// interjection lands after it.
func (r *SessionRelay) onInterrupted() {
	r.log.Debug(logModule, "Interviewer interrupted by candidate", map[string]interface{}{"session_id": r.sessionID.String()})
	if entry, ok := r.state.Transcript.CommitInterviewerTurn(r.state.Elapsed()); ok {
		r.client.SendJSON(TurnCompleteEvent{Type: EventTurnComplete, Role: string(entry.Role)})
	}
}

func (r *SessionRelay) clientLoop(ctx context.Context) {
	for r.state.IsActive() {
		mt, data, err := r.client.ReadMessage()
		if err != nil {
			if r.state.IsActive() {
				r.log.Info(logModule, "Client disconnected", map[string]interface{}{"session_id": r.sessionID.String(), "reason": err.Error()})
			}
			return
		}

		switch mt {
		case websocket.BinaryMessage:
			r.handleAudio(data)
		case websocket.TextMessage:
			r.handleText(ctx, data)
		}
	}
}

func (r *SessionRelay) handleAudio(pcm []byte) {
	r.upstream.SendAudio(pcm)
	if !r.state.UserSpoke() && isSpeech(pcm, r.cfg.SpeechRMS) {
		r.state.Watchdog.NotifyUserActivity()
	}
}

func (r *SessionRelay) handleText(ctx context.Context, data []byte) {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		r.log.Warn(logModule, "Ignoring malformed client message", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
		return
	}

	switch msg.Type {
	case clientTranscript:
		if msg.Content == "" {
			return
		}
		entry := r.state.Transcript.Append(transcript.RoleCandidate, msg.Content, r.state.Elapsed())
		r.client.SendJSON(TranscriptEvent{Type: EventTranscript, Role: string(entry.Role), Content: entry.Content})

	case clientFrame:
		if msg.Data == "" {
			return
		}
		go r.analyzeFrame(msg.Data, r.state.Elapsed())

	case clientCodeShare:
		r.upstream.SendText(fmt.Sprintf(constant.CodeShareInstructionFmt, msg.Language, msg.Language, msg.Code))
		r.state.Transcript.Append(transcript.RoleCandidate,
			fmt.Sprintf(constant.CandidateCodeEntryFmt, msg.Language, msg.Language, msg.Code),
			r.state.Elapsed())

	case clientCodeRunResult:
		r.upstream.SendText(fmt.Sprintf(constant.CodeRunInstructionFmt,
			msg.Language, orNone(msg.Status), orNone(msg.Stdout), orNone(msg.Stderr), orNone(msg.CompileOutput)))

	case clientPlaybackComplete:
		r.state.Watchdog.ResetActivity()
		r.state.Watchdog.Arm(r.cfg.SilenceTimeout, r.nudge)

	case clientEnd:
		r.log.Info(logModule, "Client ended interview", map[string]interface{}{"session_id": r.sessionID.String()})
		r.state.Deactivate()

	default:
		r.log.Warn(logModule, "Unknown client message type", map[string]interface{}{"session_id": r.sessionID.String(), "type": msg.Type})
	}
}

func (r *SessionRelay) nudge() {
	if !r.state.IsActive() || !r.upstream.IsActive() {
		return
	}
	r.log.Info(logModule, "Candidate silent, sending nudge", map[string]interface{}{"session_id": r.sessionID.String()})
	r.upstream.SendText(constant.NudgeInstruction)
}

// analyzeFrame runs detached from the relay with its own deadline and its
// own storage write, so a slow classifier never holds up audio.
func (r *SessionRelay) analyzeFrame(frame string, offset float64) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.FrameTimeout)
	defer cancel()

	var result *emotion.Result
	if r.deps.Emotions != nil {
		result = r.deps.Emotions.AnalyzeFrame(ctx, frame)
	}
	if result == nil {
		result = emotion.Fallback()
	}

	snapshot := &entity.EmotionSnapshot{
		Id:              uuid.New(),
		SessionId:       r.sessionID,
		Timestamp:       offset,
		Source:          entity.EmotionSourceFace,
		Emotions:        result.Emotions,
		DominantEmotion: result.DominantEmotion,
		StressScore:     result.StressScore,
		ConfidenceScore: result.ConfidenceScore,
		CreatedAt:       time.Now(),
	}
	if err := r.deps.Store.RecordEmotion(ctx, snapshot); err != nil {
		r.log.Warn(logModule, "Failed to store emotion snapshot", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
	}

	r.client.SendJSON(EmotionEvent{Type: EventEmotion, Timestamp: offset, Data: result})
}

// finalize runs exactly once per relay: it stops the timer, drains the
// upstream receiver, persists the run and releases everything the relay owns.
func (r *SessionRelay) finalize() {
	r.finalizeOne.Do(func() {
		r.state.Deactivate()
		r.state.Watchdog.Cancel()

		if r.cancel != nil {
			r.cancel()
		}
		if r.recvDone != nil {
			// closing the upstream unblocks a pending Receive
			r.upstream.Disconnect()
			<-r.recvDone
		}

		if r.session != nil && r.state.Started() {
			r.persistCompleted()
		}

		r.upstream.Disconnect()
		r.releaseLease()
		r.client.Close()
	})
}

func (r *SessionRelay) persistCompleted() {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.PersistTimeout)
	defer cancel()

	now := time.Now()
	entries := r.state.Transcript.Entries()
	duration := math.Round(r.state.Elapsed()*100) / 100

	r.session.Status = entity.InterviewStatusCompleted
	r.session.DurationSeconds = duration
	r.session.EndedAt = &now
	r.session.Transcript = entries

	details := map[string]interface{}{
		"session_id": r.sessionID.String(),
		"duration":   duration,
		"entries":    len(entries),
	}
	if err := r.deps.Store.Save(ctx, r.session); err != nil {
		details["error"] = err.Error()
		r.log.Error(logModule, "Failed to persist completed session", details)
		return
	}
	r.log.Info(logModule, "Interview completed", details)

	r.publish(ctx, events.InterviewCompleted, map[string]interface{}{
		"session_id":       r.sessionID.String(),
		"duration_seconds": duration,
		"entries":          len(entries),
	})

	if len(entries) > 0 && r.deps.Feedback != nil {
		if err := r.deps.Feedback.EnqueueFeedback(ctx, r.sessionID); err != nil {
			r.log.Warn(logModule, "Failed to enqueue feedback", map[string]interface{}{"session_id": r.sessionID.String(), "error": err.Error()})
		}
	}
}

func (r *SessionRelay) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if r.deps.Events == nil {
		return
	}
	if err := r.deps.Events.Publish(ctx, events.New(eventType, data)); err != nil {
		r.log.Warn(logModule, "Failed to publish event", map[string]interface{}{"event": eventType, "error": err.Error()})
	}
}

func (r *SessionRelay) sendError(message string) {
	r.client.SendJSON(ErrorEvent{Type: EventError, Message: message})
}

// isSpeech reports whether a little-endian 16-bit PCM chunk counts as the
// candidate talking. A threshold of zero accepts any non-empty chunk.
func isSpeech(pcm []byte, threshold float64) bool {
	if len(pcm) == 0 {
		return false
	}
	if threshold <= 0 {
		return true
	}
	n := len(pcm) / 2
	if n == 0 {
		return false
	}
	var sum float64
	for i := 0; i < n; i++ {
		s := float64(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
		sum += s * s
	}
	return math.Sqrt(sum/float64(n)) >= threshold
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
