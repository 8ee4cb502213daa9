package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseEnv_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "DATABASE_URL", "CONTENT_DIR", "MAIL_DELAY", "SMTP_HOST", "SMTP_PORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.MailDelay != 300*time.Millisecond {
		t.Errorf("expected default mail delay 300ms, got %v", cfg.MailDelay)
	}
	if cfg.SMTP.Timeout != 10*time.Second {
		t.Errorf("expected default SMTP timeout 10s, got %v", cfg.SMTP.Timeout)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.SMTP.Port)
	}
	if cfg.DatabaseURL != "" || cfg.SMTP.Host != "" {
		t.Errorf("expected empty optional settings, got %+v", cfg)
	}
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("MAIL_DELAY", "1s")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CONTACT_RATE_PER_MINUTE", "10")

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if cfg.MailDelay != time.Second {
		t.Errorf("unexpected mail delay %v", cfg.MailDelay)
	}
	if cfg.SMTP.Host != "smtp.example.com" || cfg.SMTP.Port != 2525 {
		t.Errorf("unexpected SMTP config %+v", cfg.SMTP)
	}
	if cfg.ContactRatePerMinute != 10 {
		t.Errorf("unexpected rate %d", cfg.ContactRatePerMinute)
	}
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	var cfg Config
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	os.Unsetenv("CONTENT_DIR")
	t.Cleanup(func() { os.Unsetenv("CONTENT_DIR") })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CONTENT_DIR=./posts\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ContentDir != "./posts" {
		t.Errorf("expected CONTENT_DIR from .env, got %q", cfg.ContentDir)
	}
}

func TestLoad_RejectsNonPositiveRate(t *testing.T) {
	for _, v := range []string{"0", "-1"} {
		t.Setenv("CONTACT_RATE_PER_MINUTE", v)
		if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Errorf("CONTACT_RATE_PER_MINUTE=%s: expected error", v)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Config{ContactRatePerMinute: 5, SendTimeout: time.Second, SMTP: SMTP{Timeout: time.Second}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noTimeout := valid
	noTimeout.SendTimeout = 0
	if err := noTimeout.Validate(); err == nil {
		t.Error("expected error for zero send timeout")
	}

	noSMTPTimeout := valid
	noSMTPTimeout.SMTP.Timeout = 0
	if err := noSMTPTimeout.Validate(); err == nil {
		t.Error("expected error for zero SMTP timeout")
	}
}
