package main

import (
	"file-processor/internal/adapters/auth"
	"file-processor/internal/config"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

// token issues an access token for an existing user, for local runs and smoke tests.
func main() {
	var (
		userID   string
		validity time.Duration
	)

	flag.StringVar(&userID, "user", "", "User id (uuid) the token is issued for")
	flag.DurationVar(&validity, "ttl", time.Hour, "Token validity")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	id, err := uuid.Parse(userID)
	if err != nil {
		logger.Error("-user must be a uuid", "error", err)
		os.Exit(1)
	}

	var cfg config.AuthConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load auth config", "error", err)
		os.Exit(1)
	}

	token, err := auth.NewJWT(cfg.JWTSecret, cfg.Issuer).GenerateToken(id, validity)
	if err != nil {
		logger.Error("failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
