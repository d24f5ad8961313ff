package config

import (
	"os"
	"strings"
)

// Features holds feature toggles fixed for the process lifetime.
type Features struct {
	CustomerB bool
}

// Config holds runtime configuration loaded from env.
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	Features           Features
	CORSAllowedOrigins []string
}

func FromEnv() Config {
	c := Config{
		Port:     getEnv("PORT", "3000"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Features: Features{
			// exact, case-sensitive match
			CustomerB: os.Getenv("ENABLE_CUSTOMER_B_FEATURE") == "true",
		},
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		parts := strings.Split(s, ",")
		for _, p := range parts {
			if v := strings.TrimSpace(p); v != "" {
				c.CORSAllowedOrigins = append(c.CORSAllowedOrigins, v)
			}
		}
	}
	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
