// Package livetest provides an in-memory live.Conn for tests.
package livetest

import (
	"context"
	"errors"
	"io"
	"sync"

	"ai-interview-be/pkg/live"

	"google.golang.org/genai"
)

var ErrClosed = errors.New("livetest: connection closed")

// Conn is a scripted upstream. Messages pushed with Push are returned by
// Receive in order; Fail makes the next Receive return an error.
type Conn struct {
	mu       sync.Mutex
	audio    [][]byte
	texts    []string
	sendErr  error
	incoming chan result
	closed   chan struct{}
	once     sync.Once
}

type result struct {
	msg *genai.LiveServerMessage
	err error
}

func NewConn() *Conn {
	return &Conn{
		incoming: make(chan result, 64),
		closed:   make(chan struct{}),
	}
}

func (c *Conn) SendAudio(pcm []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.audio = append(c.audio, append([]byte(nil), pcm...))
	return nil
}

func (c *Conn) SendText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.texts = append(c.texts, text)
	return nil
}

func (c *Conn) Receive() (*genai.LiveServerMessage, error) {
	select {
	case r := <-c.incoming:
		return r.msg, r.err
	case <-c.closed:
		return nil, ErrClosed
	}
}

func (c *Conn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *Conn) Closed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *Conn) Push(msg *genai.LiveServerMessage) {
	c.incoming <- result{msg: msg}
}

// Fail makes the stream end as if the remote dropped it.
func (c *Conn) Fail(err error) {
	if err == nil {
		err = io.EOF
	}
	c.incoming <- result{err: err}
}

func (c *Conn) FailSends(err error) {
	c.mu.Lock()
	c.sendErr = err
	c.mu.Unlock()
}

func (c *Conn) Audio() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.audio...)
}

func (c *Conn) Texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.texts...)
}

// Dialer returns conn for every Dial, or err when set.
func Dialer(conn *Conn, err error) live.Dialer {
	return live.DialerFunc(func(ctx context.Context, systemInstruction string) (live.Conn, error) {
		if err != nil {
			return nil, err
		}
		return conn, nil
	})
}

func AudioMessage(pcm []byte) *genai.LiveServerMessage {
	return &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		ModelTurn: &genai.Content{Parts: []*genai.Part{{InlineData: &genai.Blob{Data: pcm, MIMEType: "audio/pcm;rate=24000"}}}},
	}}
}

func OutputTextMessage(text string) *genai.LiveServerMessage {
	return &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		OutputTranscription: &genai.Transcription{Text: text},
	}}
}

func InputTextMessage(text string) *genai.LiveServerMessage {
	return &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		InputTranscription: &genai.Transcription{Text: text},
	}}
}

func TurnCompleteMessage() *genai.LiveServerMessage {
	return &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{TurnComplete: true}}
}

func InterruptedMessage() *genai.LiveServerMessage {
	return &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{Interrupted: true}}
}

func GoAwayMessage() *genai.LiveServerMessage {
	return &genai.LiveServerMessage{GoAway: &genai.LiveServerGoAway{}}
}
