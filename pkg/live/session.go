package live

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"ai-interview-be/internal/pkg/logger"
)

const logModule = "LiveSession"

// ErrUpstreamDeath is returned by ReceiveResponses when the stream ends
// without a turn boundary while the session was still supposed to be alive.
var ErrUpstreamDeath = errors.New("upstream session ended unexpectedly")

var errGoAway = errors.New("upstream sent go-away")

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateActive
	StateListening
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateListening:
		return "listening"
	default:
		return "disconnected"
	}
}

// ConnectError wraps a failure to open the upstream stream.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect upstream: %v", e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// Handlers receive upstream events. Nil handlers are skipped.
type Handlers struct {
	OnAudio        func(pcm []byte)
	OnOutputText   func(text string)
	OnInputText    func(text string)
	OnTurnComplete func()
	OnInterrupted  func()
}

// Session wraps one upstream conversation. Sends are fire-and-forget: a
// transport failure marks the session inactive instead of returning an error.
type Session struct {
	dialer Dialer
	logger logger.ILogger

	mu     sync.Mutex
	conn   Conn
	sendMu sync.Mutex

	state     atomic.Int32
	active    atomic.Bool
	closeOnce sync.Once
}

func NewSession(dialer Dialer, log logger.ILogger) *Session {
	return &Session{dialer: dialer, logger: log}
}

func (s *Session) Connect(ctx context.Context, systemInstruction string) error {
	s.state.Store(int32(StateConnecting))

	conn, err := s.dialer.Dial(ctx, systemInstruction)
	if err != nil {
		s.state.Store(int32(StateDisconnected))
		s.logger.Error(logModule, "Failed to connect upstream", map[string]interface{}{"error": err})
		return &ConnectError{Err: err}
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.state.Store(int32(StateActive))
	s.active.Store(true)
	s.logger.Info(logModule, "Upstream connected", nil)
	return nil
}

func (s *Session) IsActive() bool {
	return s.active.Load()
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) SendAudio(pcm []byte) {
	s.send("audio", func(c Conn) error { return c.SendAudio(pcm) })
}

func (s *Session) SendText(text string) {
	s.send("text", func(c Conn) error { return c.SendText(text) })
}

func (s *Session) send(kind string, fn func(Conn) error) {
	conn := s.currentConn()
	if conn == nil || !s.IsActive() {
		s.logger.Debug(logModule, "Dropping send on inactive session", map[string]interface{}{"kind": kind})
		return
	}

	s.sendMu.Lock()
	err := fn(conn)
	s.sendMu.Unlock()

	if err != nil {
		s.logger.Warn(logModule, "Upstream send failed", map[string]interface{}{"kind": kind, "error": err.Error()})
		s.active.Store(false)
	}
}

// ReceiveResponses consumes turns until the session goes inactive. Each
// iteration reads exactly one turn, ended by turn-complete or interruption.
// A read that fails while the session is still active is upstream death.
func (s *Session) ReceiveResponses(ctx context.Context, h Handlers) error {
	conn := s.currentConn()
	if conn == nil {
		return nil
	}

	for s.IsActive() && ctx.Err() == nil {
		if err := s.receiveTurn(conn, h); err != nil {
			if !s.IsActive() || ctx.Err() != nil {
				return nil
			}
			s.active.Store(false)
			s.state.Store(int32(StateDisconnected))
			s.logger.Error(logModule, "Upstream died mid-session", map[string]interface{}{"error": err.Error()})
			return fmt.Errorf("%w: %v", ErrUpstreamDeath, err)
		}
	}
	return nil
}

func (s *Session) receiveTurn(conn Conn, h Handlers) error {
	s.state.CompareAndSwap(int32(StateActive), int32(StateListening))
	defer s.state.CompareAndSwap(int32(StateListening), int32(StateActive))

	for {
		msg, err := conn.Receive()
		if err != nil {
			return err
		}
		if msg == nil {
			continue
		}
		if msg.GoAway != nil {
			return errGoAway
		}

		sc := msg.ServerContent
		if sc == nil {
			continue
		}

		if sc.ModelTurn != nil && h.OnAudio != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
					h.OnAudio(part.InlineData.Data)
				}
			}
		}
		if t := sc.OutputTranscription; t != nil && t.Text != "" && h.OnOutputText != nil {
			h.OnOutputText(t.Text)
		}
		if t := sc.InputTranscription; t != nil && t.Text != "" && h.OnInputText != nil {
			h.OnInputText(t.Text)
		}

		if sc.Interrupted {
			if h.OnInterrupted != nil {
				h.OnInterrupted()
			}
			return nil
		}
		if sc.TurnComplete {
			if h.OnTurnComplete != nil {
				h.OnTurnComplete()
			}
			return nil
		}
	}
}

// Disconnect is idempotent and safe without a prior Connect.
func (s *Session) Disconnect() {
	s.active.Store(false)
	s.state.Store(int32(StateDisconnected))

	conn := s.currentConn()
	if conn == nil {
		return
	}
	s.closeOnce.Do(func() {
		if err := conn.Close(); err != nil {
			s.logger.Debug(logModule, "Error closing upstream", map[string]interface{}{"error": err.Error()})
		}
		s.logger.Info(logModule, "Upstream disconnected", nil)
	})
}

func (s *Session) currentConn() Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}
