package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Mail     MailConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type FirebaseConfig struct {
	// CredentialsFile is the path to the service account key (SERVICE_ACCOUNT).
	CredentialsFile string
	DatabaseURL     string
}

type MailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	// FromName and FromAddress form the fixed sender identity.
	FromName    string
	FromAddress string
}

type CORSConfig struct {
	// AllowedOrigin is the single origin browsers may call from.
	AllowedOrigin string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables.
// It fails when the service account file is missing or not valid JSON,
// since nothing in the service can run without Firebase credentials.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Firebase: FirebaseConfig{
			CredentialsFile: getEnv("SERVICE_ACCOUNT", ""),
			DatabaseURL:     getEnv("DATABASE_URL", ""),
		},
		Mail: MailConfig{
			Host:        getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:        getEnv("SMTP_PORT", "465"),
			User:        getEnv("MAIL", ""),
			Password:    getEnv("PASSWORD", ""),
			FromName:    getEnv("MAIL_FROM_NAME", "Sabor Academico"),
			FromAddress: getEnv("MAIL_FROM_ADDRESS", "saboracademico@gmail.com"),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ORIGIN", "https://localhost"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
		},
	}

	if err := validateCredentials(cfg.Firebase.CredentialsFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateCredentials checks that the service account key exists and parses,
// so a bad deployment fails at startup rather than on the first send.
func validateCredentials(path string) error {
	if path == "" {
		return fmt.Errorf("SERVICE_ACCOUNT is not set")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read service account file %q: %w", path, err)
	}

	var account map[string]interface{}
	if err := json.Unmarshal(raw, &account); err != nil {
		return fmt.Errorf("service account file %q is not valid JSON: %w", path, err)
	}

	return nil
}

// getEnv gets an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// SMTPAddr returns the host:port the mailer dials.
func (m MailConfig) SMTPAddr() string {
	return m.Host + ":" + m.Port
}

// From returns the sender identity in RFC 5322 name-addr form.
func (m MailConfig) From() string {
	return fmt.Sprintf("%q <%s>", m.FromName, m.FromAddress)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
