package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Log      LogConfig
	Minio    MinioConfig
	Upload   FileUploadConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
	Worker   WorkerConfig
	Sweeper  SweeperConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Mail     MailConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Host           string `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string `envconfig:"SERVER_PORT" default:"8080"`
	MaxRequestSize int64  `envconfig:"SERVER_MAX_REQUEST_SIZE" default:"33554432"` // 32MB
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type FileUploadConfig struct {
	MaxSize           int64    `envconfig:"UPLOAD_MAX_SIZE" default:"10485760"` // 10MB
	AllowedExtensions []string `envconfig:"UPLOAD_ALLOWED_EXTENSIONS" default:".csv"`
}

type NATSConfig struct {
	URL          string        `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName   string        `envconfig:"NATS_STREAM_NAME" default:"FILE_JOBS"`
	ConsumerName string        `envconfig:"NATS_CONSUMER_NAME" default:"file-processor"`
	Subject      string        `envconfig:"NATS_SUBJECT" default:"files.process"`
	AckWait      time.Duration `envconfig:"NATS_ACK_WAIT" default:"5m"`
	MaxDeliver   int           `envconfig:"NATS_MAX_DELIVER" default:"5"`
}

type WorkerConfig struct {
	// QueueDriver selects the task queue: "nats" or "memory" (in-process pool)
	QueueDriver string `envconfig:"QUEUE_DRIVER" default:"nats"`
	Concurrency int    `envconfig:"WORKER_CONCURRENCY" default:"4"`
	QueueSize   int    `envconfig:"WORKER_QUEUE_SIZE" default:"256"`
}

type SweeperConfig struct {
	Every          time.Duration `envconfig:"SWEEPER_EVERY" default:"5m"`
	StuckThreshold time.Duration `envconfig:"SWEEPER_STUCK_THRESHOLD" default:"30m"`
}

type CacheConfig struct {
	OwnerFilesTTL  time.Duration `envconfig:"CACHE_OWNER_FILES_TTL" default:"120s"`
	OwnerFilesSize int           `envconfig:"CACHE_OWNER_FILES_SIZE" default:"10000"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" required:"true"`
	Issuer    string `envconfig:"AUTH_JWT_ISSUER" default:"file-processor"`
}

type MailConfig struct {
	Host     string `envconfig:"MAIL_HOST" default:"localhost"`
	Port     int    `envconfig:"MAIL_PORT" default:"25"`
	Username string `envconfig:"MAIL_USERNAME"`
	Password string `envconfig:"MAIL_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"noreply@file-processor.local"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
