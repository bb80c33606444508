package config

import "os"

type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
}

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	PostgresURI string
	RedisURI    string

	GeminiAPIKey string
	OpenAIAPIKey string
	OpenAIModel  string
	GroqAPIKey   string
	OllamaHost   string
	OllamaModel  string

	Twitter   OAuthCredentials
	LinkedIn  OAuthCredentials
	Facebook  OAuthCredentials
	Instagram OAuthCredentials

	BaseURL     string
	FrontendURL string
	CORSOrigins string

	UploadDir string
	R2        R2

	SecretKey  string
	CookieName string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", "127.0.0.1:6379"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		OllamaHost:   getEnv("OLLAMA_HOST", ""),
		OllamaModel:  getEnv("OLLAMA_MODEL", "llama3"),

		Twitter: OAuthCredentials{
			ClientID:     getEnv("TWITTER_CLIENT_ID", ""),
			ClientSecret: getEnv("TWITTER_CLIENT_SECRET", ""),
		},
		LinkedIn: OAuthCredentials{
			ClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
			ClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
		},
		Facebook: OAuthCredentials{
			ClientID:     getEnv("FACEBOOK_APP_ID", ""),
			ClientSecret: getEnv("FACEBOOK_APP_SECRET", ""),
		},
		Instagram: OAuthCredentials{
			ClientID:     getEnv("INSTAGRAM_APP_ID", ""),
			ClientSecret: getEnv("INSTAGRAM_APP_SECRET", ""),
		},

		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
		},

		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "contentforge_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
