package config

import "os"

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	PostgresURI          string
	RedisURI             string
	AdminPassword        string
	SecretKey            string
	PosterWebhookURL     string
	GenerationWebhookURL string
	TrendWebhookURL      string
	R2                   R2
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI:          getEnv("POSTGRES_URI", ""),
		RedisURI:             getEnv("REDIS_URI", "127.0.0.1:6379"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", ""),
		SecretKey:            getEnv("SECRET_KEY", ""),
		PosterWebhookURL:     getEnv("POSTER_WEBHOOK_URL", ""),
		GenerationWebhookURL: getEnv("GENERATION_WEBHOOK_URL", ""),
		TrendWebhookURL:      getEnv("TREND_WEBHOOK_URL", ""),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
