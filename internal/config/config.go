package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DataDir string
	LLM     LLMConfig
	Store   StoreConfig
}

type StoreConfig struct {
	PostgresDSN string
	Archive     ArchiveConfig
}

// ArchiveConfig describes the optional S3 mirror. Enabled follows the
// endpoint: no endpoint, no archive.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type LLMConfig struct {
	OpenRouterKey   string
	OpenRouterBase  string
	OpenRouterModel string
	GroqKey         string
	GeminiKey       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8000", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	return &Config{
		Port:    *port,
		DataDir: firstNonEmpty(strings.TrimSpace(os.Getenv("PLANNER_DATA_DIR")), "data"),
		LLM: LLMConfig{
			OpenRouterKey:   strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
			OpenRouterBase:  strings.TrimSpace(os.Getenv("OPENROUTER_BASE_URL")),
			OpenRouterModel: strings.TrimSpace(os.Getenv("OPENROUTER_MODEL")),
			GroqKey:         strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			GeminiKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		},
		Store: StoreConfig{
			PostgresDSN: strings.TrimSpace(os.Getenv("PLAN_STORE_PG_DSN")),
			Archive:     loadArchiveConfig(),
		},
	}, nil
}

func loadArchiveConfig() ArchiveConfig {
	endpoint := strings.TrimSpace(os.Getenv("ARCHIVE_S3_ENDPOINT"))
	return ArchiveConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(os.Getenv("ARCHIVE_S3_REGION"), "us-east-1"),
		AccessKey: strings.TrimSpace(os.Getenv("ARCHIVE_S3_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("ARCHIVE_S3_SECRET_KEY")),
		Bucket:    strings.TrimSpace(os.Getenv("ARCHIVE_S3_BUCKET")),
		UseSSL:    strings.EqualFold(os.Getenv("ARCHIVE_S3_USE_SSL"), "true"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
