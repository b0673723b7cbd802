package live

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	DefaultModel      = "gemini-live-2.5-flash-native-audio"
	DefaultVoice      = "Aoede"
	DefaultSampleRate = 16000
)

type GeminiConfig struct {
	APIKey     string
	UseVertex  bool
	Project    string
	Location   string
	Model      string
	Voice      string
	SampleRate int
}

// GeminiDialer opens audio-in/audio-out sessions against the Gemini Live API
// with transcription enabled in both directions.
type GeminiDialer struct {
	client   *genai.Client
	model    string
	voice    string
	mimeType string
}

func NewGeminiDialer(ctx context.Context, cfg GeminiConfig) (*GeminiDialer, error) {
	cc := &genai.ClientConfig{Backend: genai.BackendGeminiAPI, APIKey: cfg.APIKey}
	if cfg.UseVertex {
		cc = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.Project,
			Location: cfg.Location,
		}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Voice == "" {
		cfg.Voice = DefaultVoice
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}

	return &GeminiDialer{
		client:   client,
		model:    cfg.Model,
		voice:    cfg.Voice,
		mimeType: fmt.Sprintf("audio/pcm;rate=%d", cfg.SampleRate),
	}, nil
}

func (d *GeminiDialer) Dial(ctx context.Context, systemInstruction string) (Conn, error) {
	session, err := d.client.Live.Connect(ctx, d.model, &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SystemInstruction:  genai.NewContentFromText(systemInstruction, genai.RoleUser),
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: d.voice},
			},
		},
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	})
	if err != nil {
		return nil, err
	}
	return &geminiConn{session: session, mimeType: d.mimeType}, nil
}

type geminiConn struct {
	session  *genai.Session
	mimeType string
}

func (c *geminiConn) SendAudio(pcm []byte) error {
	return c.session.SendRealtimeInput(genai.LiveRealtimeInput{
		Audio: &genai.Blob{Data: pcm, MIMEType: c.mimeType},
	})
}

func (c *geminiConn) SendText(text string) error {
	return c.session.SendClientContent(genai.LiveClientContentInput{
		Turns:        []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		TurnComplete: genai.Ptr(true),
	})
}

func (c *geminiConn) Receive() (*genai.LiveServerMessage, error) {
	return c.session.Receive()
}

func (c *geminiConn) Close() error {
	return c.session.Close()
}
