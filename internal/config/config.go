package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Company  CompanyConfig
	Storage  StorageConfig
	SendGrid SendGridConfig
	OpenAI   OpenAIConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// CompanyConfig holds the letterhead block stamped on every generated
// document plus the sender identity used for outgoing mail.
type CompanyConfig struct {
	Name        string
	Tagline     string
	LLPIN       string
	PAN         string
	TAN         string
	ContactLine string
	SenderEmail string
	SenderName  string
}

// StorageConfig holds the paths of the two persisted artifacts: the
// employee master workbook and the generated-document directory.
type StorageConfig struct {
	EmployeeFile string
	DocumentDir  string
}

type SendGridConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables only")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Company = CompanyConfig{
		Name:        getEnv("COMPANY_NAME", "SHEEP.AI ADVISORY LLP"),
		Tagline:     getEnv("COMPANY_TAGLINE", "Incorporated under LLP Act, 2008"),
		LLPIN:       getEnv("COMPANY_LLPIN", "ACQ-1759"),
		PAN:         getEnv("COMPANY_PAN", "AFRFS4064A"),
		TAN:         getEnv("COMPANY_TAN", "LKNS29836C"),
		ContactLine: getEnv("COMPANY_CONTACT_LINE", "Email: hr@sheepai.info | Website: www.sheepai.info"),
		SenderEmail: getEnv("MAIL_SENDER_EMAIL", "hr@sheepai.info"),
		SenderName:  getEnv("MAIL_SENDER_NAME", "HR Team"),
	}

	config.Storage = StorageConfig{
		EmployeeFile: getEnv("EMPLOYEE_FILE", "data/employee_master.xlsx"),
		DocumentDir:  getEnv("DOCUMENT_DIR", "static/generated_pdfs"),
	}

	// Collaborator credentials are allowed to be empty here. A missing key
	// fails the operation that needs it, not startup.
	config.SendGrid = SendGridConfig{
		APIKey: getEnv("SENDGRID_API_KEY", ""),
	}

	config.OpenAI = OpenAIConfig{
		APIKey: getEnv("OPENAI_API_KEY", ""),
		Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("COMPANY_NAME is required")
	}
	if c.Storage.EmployeeFile == "" {
		return fmt.Errorf("EMPLOYEE_FILE is required")
	}
	if c.Storage.DocumentDir == "" {
		return fmt.Errorf("DOCUMENT_DIR is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
