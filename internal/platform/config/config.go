package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Mail transports.
const (
	MailTransportSMTP  = "smtp"
	MailTransportGmail = "gmail"
	MailTransportLog   = "log"
)

// Attachment stores.
const (
	AttachmentStoreDB = "db"
	AttachmentStoreS3 = "s3"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	JWTSecret        string
	MigrationsPath   string
	DefaultCompanyID int64

	// Reporting
	ResidualSource string // stored | ledger
	PDFEngine      string // fpdf | html

	// Mail
	MailTransport      string
	MailFromAddress    string
	MailArchivePath    string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	GoogleClientID     string
	GoogleClientSecret string
	GmailRefreshToken  string

	// Attachments
	AttachmentStore    string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	S3Endpoint         string

	// HTTP extras
	RedisURL           string
	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DEFAULT_COMPANY_ID", 1)
	viper.SetDefault("RESIDUAL_SOURCE", "stored")
	viper.SetDefault("PDF_ENGINE", "fpdf")
	viper.SetDefault("MAIL_TRANSPORT", MailTransportLog)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ATTACHMENT_STORE", AttachmentStoreDB)
	viper.SetDefault("AWS_REGION", "eu-west-1")
	viper.SetDefault("RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		MigrationsPath:   viper.GetString("MIGRATIONS_PATH"),
		DefaultCompanyID: viper.GetInt64("DEFAULT_COMPANY_ID"),

		ResidualSource: strings.ToLower(viper.GetString("RESIDUAL_SOURCE")),
		PDFEngine:      strings.ToLower(viper.GetString("PDF_ENGINE")),

		MailTransport:      strings.ToLower(viper.GetString("MAIL_TRANSPORT")),
		MailFromAddress:    viper.GetString("SMTP_FROM_ADDRESS"),
		MailArchivePath:    viper.GetString("MAIL_ARCHIVE_PATH"),
		SMTPHost:           viper.GetString("SMTP_HOST"),
		SMTPPort:           viper.GetInt("SMTP_PORT"),
		SMTPUsername:       viper.GetString("SMTP_USERNAME"),
		SMTPPassword:       viper.GetString("SMTP_PASSWORD"),
		GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		GmailRefreshToken:  viper.GetString("GMAIL_REFRESH_TOKEN"),

		AttachmentStore:    strings.ToLower(viper.GetString("ATTACHMENT_STORE")),
		AWSRegion:          viper.GetString("AWS_REGION"),
		AWSAccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           viper.GetString("S3_BUCKET"),
		S3Endpoint:         viper.GetString("S3_ENDPOINT"),

		RedisURL:           viper.GetString("REDIS_URL"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:      viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ResidualSource {
	case "stored", "ledger":
	default:
		return fmt.Errorf("invalid RESIDUAL_SOURCE %q: expected stored or ledger", c.ResidualSource)
	}

	switch c.MailTransport {
	case MailTransportSMTP:
		if c.SMTPHost == "" || c.MailFromAddress == "" {
			return fmt.Errorf("MAIL_TRANSPORT=smtp requires SMTP_HOST and SMTP_FROM_ADDRESS")
		}
	case MailTransportGmail:
		if c.GoogleClientID == "" || c.GoogleClientSecret == "" || c.GmailRefreshToken == "" {
			return fmt.Errorf("MAIL_TRANSPORT=gmail requires GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GMAIL_REFRESH_TOKEN")
		}
	case MailTransportLog:
		if c.MailFromAddress == "" {
			c.MailFromAddress = "statements@localhost"
		}
	default:
		return fmt.Errorf("invalid MAIL_TRANSPORT %q", c.MailTransport)
	}

	switch c.AttachmentStore {
	case AttachmentStoreDB:
	case AttachmentStoreS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("ATTACHMENT_STORE=s3 requires S3_BUCKET")
		}
	default:
		return fmt.Errorf("invalid ATTACHMENT_STORE %q", c.AttachmentStore)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
