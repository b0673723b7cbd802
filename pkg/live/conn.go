package live

import (
	"context"

	"google.golang.org/genai"
)

// Conn is one open bidirectional stream to the conversational endpoint.
// Implementations must allow Receive to run concurrently with the send
// methods; Close must unblock a pending Receive.
type Conn interface {
	SendAudio(pcm []byte) error
	SendText(text string) error
	Receive() (*genai.LiveServerMessage, error)
	Close() error
}

// Dialer opens a Conn configured with the given system instruction.
type Dialer interface {
	Dial(ctx context.Context, systemInstruction string) (Conn, error)
}

type DialerFunc func(ctx context.Context, systemInstruction string) (Conn, error)

func (f DialerFunc) Dial(ctx context.Context, systemInstruction string) (Conn, error) {
	return f(ctx, systemInstruction)
}
