package config

import (
	"log"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	DatabaseURL string

	JWTSecret []byte
	TokenAlg  string

	SignupPin string
}

// Load reads the configuration once at process start. The returned
// struct is never mutated afterwards.
func Load() Config {
	cfg := Config{
		ServiceName: EnvDefault("SERVICE_NAME", "category-service"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		TokenAlg:    EnvDefault("TOKEN_ALG", "HS256"),
		SignupPin:   os.Getenv("SIGNUP_PIN"),
	}

	MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	MustNonEmpty(cfg.SignupPin, "SIGNUP_PIN")

	if jwt.GetSigningMethod(cfg.TokenAlg) == nil {
		log.Fatalf("unknown TOKEN_ALG %q", cfg.TokenAlg)
	}

	return cfg
}

func (c Config) SigningMethod() jwt.SigningMethod {
	return jwt.GetSigningMethod(c.TokenAlg)
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
