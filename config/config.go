package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// LLM provider selection: "gemini" or "openai".
	AIProvider   string `mapstructure:"AI_PROVIDER"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel  string `mapstructure:"OPENAI_MODEL"`

	// Speech providers.
	ElevenLabsAPIKey      string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsFemaleVoice string `mapstructure:"ELEVENLABS_FEMALE_VOICE"`
	ElevenLabsMaleVoice   string `mapstructure:"ELEVENLABS_MALE_VOICE"`
	GoogleCloudAPIKey     string `mapstructure:"GOOGLE_CLOUD_API_KEY"`

	// Service-account files for Google Cloud Speech and Firebase messaging.
	GoogleServiceAccountFile   string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	FirebaseServiceAccountFile string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_FILE"`

	// Avatar (HeyGen / LiveAvatar) session configuration.
	HeyGenAPIKey          string `mapstructure:"HEYGEN_API_KEY"`
	HeyGenAvatarID        string `mapstructure:"HEYGEN_AVATAR_ID"`
	HeyGenSandboxAvatarID string `mapstructure:"HEYGEN_SANDBOX_AVATAR_ID"`

	// Routing policy.
	SupervisorEmployeeID    string  `mapstructure:"SUPERVISOR_EMPLOYEE_ID"`
	SmartMatchMinConfidence float64 `mapstructure:"SMART_MATCH_MIN_CONFIDENCE"`
	SessionTTLMinutes       int     `mapstructure:"SESSION_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-2.5-flash")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("ELEVENLABS_API_KEY", "")
	viper.SetDefault("ELEVENLABS_FEMALE_VOICE", "EXAVITQu4vr4xnSDxMaL")
	viper.SetDefault("ELEVENLABS_MALE_VOICE", "pNInz6obpgDQGcFmaJgB")
	viper.SetDefault("GOOGLE_CLOUD_API_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("FIREBASE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("HEYGEN_API_KEY", "")
	viper.SetDefault("HEYGEN_AVATAR_ID", "")
	viper.SetDefault("HEYGEN_SANDBOX_AVATAR_ID", "")
	viper.SetDefault("SUPERVISOR_EMPLOYEE_ID", "emp011")
	viper.SetDefault("SMART_MATCH_MIN_CONFIDENCE", 0.70)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
