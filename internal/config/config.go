package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Relay    RelayConfig
	Services ServiceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	RelayLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	UploadMaxBytes     int
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	LiveModel      string
	TextModel      string
	Voice          string
	UseVertex      bool
	CloudProject   string
	CloudLocation  string
	LLMProvider    string // "gemini" or "ollama"
	OllamaBaseURL  string
	OllamaModel    string
	FeedbackTopic  string
	EmotionTimeout int // seconds
}

type RelayConfig struct {
	SilenceTimeoutSeconds float64
	SpeechRMS             float64
	InputSampleRate       int
	LeaseTTLMinutes       int
	AutoFeedback          bool
}

type ServiceConfig struct {
	EmotionURL   string
	Judge0URL    string
	Judge0APIKey string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			RelayLogFilePath:   getEnv("RELAY_LOG_FILE_PATH", "logs/relay.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			UploadMaxBytes:     getEnvAsInt("UPLOAD_MAX_BYTES", 10*1024*1024),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LiveModel:      getEnv("GEMINI_LIVE_MODEL", "gemini-live-2.5-flash-native-audio"),
			TextModel:      getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
			Voice:          getEnv("GEMINI_VOICE", "Aoede"),
			UseVertex:      getEnvAsBool("GOOGLE_GENAI_USE_VERTEXAI", true),
			CloudProject:   getEnv("GOOGLE_CLOUD_PROJECT", ""),
			CloudLocation:  getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:    getEnv("OLLAMA_MODEL", "llama3"),
			FeedbackTopic:  getEnv("FEEDBACK_TOPIC_NAME", "GENERATE_INTERVIEW_FEEDBACK"),
			EmotionTimeout: getEnvAsInt("EMOTION_TIMEOUT_SECONDS", 10),
		},
		Relay: RelayConfig{
			SilenceTimeoutSeconds: getEnvAsFloat("RELAY_SILENCE_TIMEOUT_SECONDS", 10),
			SpeechRMS:             getEnvAsFloat("RELAY_SPEECH_RMS", 0),
			InputSampleRate:       getEnvAsInt("RELAY_INPUT_SAMPLE_RATE", 16000),
			LeaseTTLMinutes:       getEnvAsInt("RELAY_LEASE_TTL_MINUTES", 120),
			AutoFeedback:          getEnvAsBool("FEEDBACK_AUTO_GENERATE", false),
		},
		Services: ServiceConfig{
			EmotionURL:   getEnv("EMOTION_SERVICE_URL", ""),
			Judge0URL:    getEnv("JUDGE0_URL", "https://judge0-ce.p.rapidapi.com"),
			Judge0APIKey: getEnv("JUDGE0_API_KEY", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
