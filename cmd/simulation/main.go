package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/spf13/cobra"
)

// Simplified DTOs for the script
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type topic struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type interview struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	DurationSeconds float64 `json:"duration_seconds"`
	Transcript      []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"transcript"`
}

type serverEvent struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Role    string          `json:"role"`
	Content string          `json:"content"`
	Partial bool            `json:"partial"`
	Data    json.RawMessage `json:"data"`
}

var (
	baseURL string
	listen  time.Duration
	answer  string
)

var rootCmd = &cobra.Command{
	Use:   "simulation",
	Short: "Run one live interview against a local backend",
	Long: `Create a topic interview, open its socket, send a typed answer and
end the session, then print what the backend persisted.`,
	RunE: runSimulation,
}

func main() {
	rootCmd.Flags().StringVar(&baseURL, "base", "http://localhost:8000", "backend base URL")
	rootCmd.Flags().DurationVar(&listen, "listen", 20*time.Second, "how long to keep the interview open")
	rootCmd.Flags().StringVar(&answer, "answer", "I would use a hash map to get constant time lookups.", "typed answer sent as a candidate transcript")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Live Interview Simulation Client ===")

	topics, err := getTopics(baseURL)
	if err != nil {
		return fmt.Errorf("failed to list topics: %w", err)
	}
	if len(topics) == 0 {
		return fmt.Errorf("no topics found; seed them with: go run ./cmd/seed")
	}
	fmt.Printf("Topic: %s\n", topics[0].Name)

	session, err := createInterview(baseURL, topics[0].ID)
	if err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	fmt.Printf("Interview Created: %s\n", session.ID)

	wsURL := strings.Replace(baseURL, "http", "ws", 1) + "/ws/interview/" + session.ID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to open socket: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		audioChunks := 0
		for {
			var evt serverEvent
			if err := conn.ReadJSON(&evt); err != nil {
				fmt.Printf("Socket closed after %d audio chunks (%v)\n", audioChunks, err)
				return
			}
			switch evt.Type {
			case "audio":
				audioChunks++
			case "transcript":
				if !evt.Partial || evt.Role == "interviewer" {
					fmt.Printf("[%s] %s\n", strings.ToUpper(evt.Role), evt.Content)
				}
			case "turn_complete":
				fmt.Printf("--- %s turn complete ---\n", evt.Role)
				if evt.Role == "interviewer" {
					send(conn, map[string]string{"type": "playback_complete"})
				}
			case "status", "error":
				fmt.Printf("%s: %s\n", strings.ToUpper(evt.Type), evt.Message)
			default:
				fmt.Printf("%s\n", evt.Type)
			}
		}
	}()

	time.Sleep(listen / 2)
	fmt.Printf("\nCANDIDATE: %s\n", answer)
	send(conn, map[string]string{"type": "transcript", "content": answer})

	time.Sleep(listen / 2)
	send(conn, map[string]string{"type": "end"})

	select {
	case <-done:
	case <-time.After(15 * time.Second):
		fmt.Println("Timed out waiting for the server to close the socket")
	}

	// Small delay so the finalizer can persist before we read it back
	time.Sleep(1 * time.Second)

	final, err := getInterview(baseURL, session.ID)
	if err != nil {
		return fmt.Errorf("failed to read interview: %w", err)
	}
	fmt.Printf("\nStatus: %s, duration %.2fs, %d transcript entries\n", final.Status, final.DurationSeconds, len(final.Transcript))
	return nil
}

func send(conn *websocket.Conn, msg interface{}) {
	if err := conn.WriteJSON(msg); err != nil {
		fmt.Printf("Send error: %v\n", err)
	}
}

func getTopics(baseURL string) ([]topic, error) {
	var res envelope[[]topic]
	err := doJSON("GET", baseURL+"/api/topics", nil, &res)
	return res.Data, err
}

func createInterview(baseURL, topicID string) (*interview, error) {
	payload := map[string]string{
		"session_type": "topic",
		"topic_id":     topicID,
		"difficulty":   "intermediate",
	}
	var res envelope[interview]
	if err := doJSON("POST", baseURL+"/api/interviews", payload, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func getInterview(baseURL, id string) (*interview, error) {
	var res envelope[interview]
	if err := doJSON("GET", baseURL+"/api/interviews/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func doJSON(method, url string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API Error %d: %s", resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
