// Package config assembles the runtime configuration from environment
// variables (viper), with secrets resolved environment-first and the
// system keyring as fallback.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jaredsdml/JoulIAna-AI-Assistant/internal/credential"
)

// Config is the complete runtime configuration. Load validates it;
// after a successful Load every field is usable.
type Config struct {
	TelegramToken  string
	TelegramChatID int64

	MailServer string
	IMAPPort   string
	SMTPPort   string
	MailUser   string
	MailPass   string

	Project  string
	Location string

	PollInterval time.Duration
	AuditLogPath string
}

// Load reads the environment and resolves secrets. A missing required
// key makes startup fail; the error names every missing key at once.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("EMAIL_PORT", "993")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("GOOGLE_CLOUD_LOCATION", "us-central1")
	v.SetDefault("POLL_INTERVAL_SEC", 30)
	v.SetDefault("AUDIT_LOG_PATH", "jouliana_system.log")

	cfg := &Config{
		TelegramToken:  credential.Resolve(v.GetString("TELEGRAM_TOKEN"), "telegram-token"),
		TelegramChatID: v.GetInt64("TELEGRAM_CHAT_ID"),
		MailServer:     v.GetString("EMAIL_SERVER"),
		IMAPPort:       v.GetString("EMAIL_PORT"),
		SMTPPort:       v.GetString("SMTP_PORT"),
		MailUser:       v.GetString("EMAIL_USER"),
		MailPass:       credential.Resolve(v.GetString("EMAIL_PASS"), "email-pass"),
		Project:        v.GetString("GOOGLE_CLOUD_PROJECT"),
		Location:       v.GetString("GOOGLE_CLOUD_LOCATION"),
		PollInterval:   time.Duration(v.GetInt("POLL_INTERVAL_SEC")) * time.Second,
		AuditLogPath:   v.GetString("AUDIT_LOG_PATH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing required setting in one error.
func (c *Config) Validate() error {
	var missing []string
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if c.MailServer == "" {
		missing = append(missing, "EMAIL_SERVER")
	}
	if c.MailUser == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if c.MailPass == "" {
		missing = append(missing, "EMAIL_PASS")
	}
	if c.Project == "" {
		missing = append(missing, "GOOGLE_CLOUD_PROJECT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("faltan variables de entorno: %s", strings.Join(missing, ", "))
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL_SEC debe ser positivo")
	}
	return nil
}
