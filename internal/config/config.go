package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort string

	Auth struct {
		JWTSecret  string
		TokenTTL   time.Duration
		BcryptCost int
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	tokenTTL := time.Hour
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer")
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	bcryptCost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST must be an integer")
		}
		bcryptCost = cost
	}

	cfg := &Config{ServerPort: serverPort}
	cfg.Auth.JWTSecret = jwtSecret
	cfg.Auth.TokenTTL = tokenTTL
	cfg.Auth.BcryptCost = bcryptCost
	return cfg, nil
}
