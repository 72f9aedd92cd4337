package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Pipeline PipelineConfig
	Upload   UploadConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	WriteMaxConns    int32
	WriteConnTimeout time.Duration
	ReadMaxConns     int32
	ReadConnTimeout  time.Duration
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	TimeZone         string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// OCRConfig holds OCR service client configuration
type OCRConfig struct {
	URL            string
	RequestTimeout time.Duration
	MaxAttempts    int
	BackoffBase    time.Duration
	BackoffCap     time.Duration
}

// PipelineConfig holds queue and worker sizing
type PipelineConfig struct {
	UploadQueueSize int
	OCRQueueSize    int
	IOWorkers       int
	WriterPoll      time.Duration
	MonitorInterval time.Duration
}

// UploadConfig holds upload persistence settings
type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			WriteMaxConns:    getEnvAsInt32("DB_WRITE_MAX_CONNS", 20),
			WriteConnTimeout: getEnvAsDuration("DB_WRITE_CONN_TIMEOUT", 20*time.Second),
			ReadMaxConns:     getEnvAsInt32("DB_READ_MAX_CONNS", 12),
			ReadConnTimeout:  getEnvAsDuration("DB_READ_CONN_TIMEOUT", 10*time.Second),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			TimeZone:         getEnv("DB_TIME_ZONE", "Asia/Shanghai"),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8000"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		OCR: OCRConfig{
			URL:            getEnv("OCR_SERVICE_URL", "http://127.0.0.1:8080/ocr"),
			RequestTimeout: getEnvAsDuration("OCR_REQUEST_TIMEOUT", 60*time.Second),
			MaxAttempts:    getEnvAsInt("OCR_MAX_ATTEMPTS", 5),
			BackoffBase:    getEnvAsDuration("OCR_BACKOFF_BASE", 5*time.Second),
			BackoffCap:     getEnvAsDuration("OCR_BACKOFF_CAP", 30*time.Second),
		},
		Pipeline: PipelineConfig{
			UploadQueueSize: getEnvAsInt("UPLOAD_QUEUE_SIZE", 30),
			OCRQueueSize:    getEnvAsInt("OCR_QUEUE_SIZE", 50),
			IOWorkers:       getEnvAsInt("IO_WORKERS", 8),
			WriterPoll:      getEnvAsDuration("WRITER_POLL_INTERVAL", 100*time.Millisecond),
			MonitorInterval: getEnvAsDuration("MONITOR_INTERVAL", 60*time.Second),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "./uploads"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 10<<20),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.OCR.URL == "" {
		return NewAppError("CONFIG_ERROR", "OCR_SERVICE_URL is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
