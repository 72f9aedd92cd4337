package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Database.WriteMaxConns != 20 || cfg.Database.ReadMaxConns != 12 {
		t.Errorf("pool sizes = (%d, %d), want (20, 12)", cfg.Database.WriteMaxConns, cfg.Database.ReadMaxConns)
	}
	if cfg.Database.WriteConnTimeout != 20*time.Second || cfg.Database.ReadConnTimeout != 10*time.Second {
		t.Errorf("conn timeouts = (%v, %v)", cfg.Database.WriteConnTimeout, cfg.Database.ReadConnTimeout)
	}
	if cfg.Database.TimeZone != "Asia/Shanghai" {
		t.Errorf("TimeZone = %q", cfg.Database.TimeZone)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.OCR.MaxAttempts != 5 || cfg.OCR.BackoffBase != 5*time.Second || cfg.OCR.BackoffCap != 30*time.Second {
		t.Errorf("OCR retry = %+v", cfg.OCR)
	}
	if cfg.Pipeline.UploadQueueSize != 30 || cfg.Pipeline.OCRQueueSize != 50 {
		t.Errorf("queue sizes = (%d, %d), want (30, 50)", cfg.Pipeline.UploadQueueSize, cfg.Pipeline.OCRQueueSize)
	}
	if cfg.Pipeline.WriterPoll != 100*time.Millisecond {
		t.Errorf("WriterPoll = %v", cfg.Pipeline.WriterPoll)
	}
	if cfg.Upload.MaxFileSize != 10<<20 {
		t.Errorf("MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://test")
	t.Setenv("DB_WRITE_MAX_CONNS", "5")
	t.Setenv("OCR_BACKOFF_BASE", "2s")
	t.Setenv("UPLOAD_QUEUE_SIZE", "7")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://test" {
		t.Errorf("DSN = %q", cfg.Database.DSN)
	}
	if cfg.Database.WriteMaxConns != 5 {
		t.Errorf("WriteMaxConns = %d", cfg.Database.WriteMaxConns)
	}
	if cfg.OCR.BackoffBase != 2*time.Second {
		t.Errorf("BackoffBase = %v", cfg.OCR.BackoffBase)
	}
	if cfg.Pipeline.UploadQueueSize != 7 {
		t.Errorf("UploadQueueSize = %d", cfg.Pipeline.UploadQueueSize)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_WRITE_MAX_CONNS", "lots")
	t.Setenv("OCR_BACKOFF_BASE", "soon")

	cfg := LoadConfig()
	if cfg.Database.WriteMaxConns != 20 {
		t.Errorf("WriteMaxConns = %d, want default 20", cfg.Database.WriteMaxConns)
	}
	if cfg.OCR.BackoffBase != 5*time.Second {
		t.Errorf("BackoffBase = %v, want default 5s", cfg.OCR.BackoffBase)
	}
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.DSN = "postgres://test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty DB_URL")
	}

	cfg.Database.DSN = "postgres://test"
	cfg.OCR.URL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty OCR_SERVICE_URL")
	}
}
