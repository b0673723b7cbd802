package dto

type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
	Database         string `json:"database"`
	EventBus         bool   `json:"event_bus"`
}
