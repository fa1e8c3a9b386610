package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "99887766")
	t.Setenv("EMAIL_SERVER", "mail.example.com")
	t.Setenv("EMAIL_USER", "soporte@example.com")
	t.Setenv("EMAIL_PASS", "secreto")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "demo-project")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IMAPPort != "993" {
		t.Errorf("IMAPPort = %q, want 993", cfg.IMAPPort)
	}
	if cfg.SMTPPort != "587" {
		t.Errorf("SMTPPort = %q, want 587", cfg.SMTPPort)
	}
	if cfg.Location != "us-central1" {
		t.Errorf("Location = %q", cfg.Location)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.AuditLogPath != "jouliana_system.log" {
		t.Errorf("AuditLogPath = %q", cfg.AuditLogPath)
	}
	if cfg.TelegramChatID != 99887766 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_INTERVAL_SEC", "5")
	t.Setenv("EMAIL_PORT", "1993")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.IMAPPort != "1993" {
		t.Errorf("IMAPPort = %q", cfg.IMAPPort)
	}
}

func TestValidateNamesEveryMissingKey(t *testing.T) {
	cfg := &Config{PollInterval: 30 * time.Second}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate passed with nothing set")
	}
	for _, key := range []string{
		"TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "EMAIL_SERVER",
		"EMAIL_USER", "EMAIL_PASS", "GOOGLE_CLOUD_PROJECT",
	} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error does not name %s: %v", key, err)
		}
	}
}

func TestValidateRejectsNonPositiveInterval(t *testing.T) {
	cfg := &Config{
		TelegramToken:  "t",
		TelegramChatID: 1,
		MailServer:     "m",
		MailUser:       "u",
		MailPass:       "p",
		Project:        "x",
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate passed with a zero poll interval")
	}
}
