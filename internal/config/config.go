package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/arvhie/payoff/payoff-backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Redis (optional; empty disables the schedule cache)
	RedisAddr string

	// Loan terms for the single tracked loan
	Loan LoanConfig

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// LoanConfig holds the fixed terms of the tracked loan
type LoanConfig struct {
	Principal         string
	TenureMonths      int32
	AnnualRatePercent string
	OverrideEmi       string // Optional: bank-quoted EMI used instead of the computed one
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	tenure, err := strconv.Atoi(getEnv("LOAN_TENURE_MONTHS", "0"))
	if err != nil {
		return nil, fmt.Errorf("LOAN_TENURE_MONTHS must be an integer: %w", err)
	}

	ratePerSecond, err := strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_PER_SECOND must be a number: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be an integer: %w", err)
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		Loan: LoanConfig{
			Principal:         getEnv("LOAN_PRINCIPAL", ""),
			TenureMonths:      int32(tenure),
			AnnualRatePercent: getEnv("LOAN_ANNUAL_RATE", ""),
			OverrideEmi:       getEnv("LOAN_OVERRIDE_EMI", ""),
		},
		Port:               getEnv("PORT", "8080"),
		CORSOrigins:        strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:                getEnv("ENV", "development"),
		RateLimitPerSecond: ratePerSecond,
		RateLimitBurst:     burst,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoanTerms parses the configured loan terms into the domain type
func (c *Config) LoanTerms() (domain.LoanTerms, error) {
	principal, err := decimal.NewFromString(c.Loan.Principal)
	if err != nil {
		return domain.LoanTerms{}, fmt.Errorf("LOAN_PRINCIPAL is not a number: %w", err)
	}
	rate, err := decimal.NewFromString(c.Loan.AnnualRatePercent)
	if err != nil {
		return domain.LoanTerms{}, fmt.Errorf("LOAN_ANNUAL_RATE is not a number: %w", err)
	}

	terms := domain.LoanTerms{
		Principal:         principal,
		TenureMonths:      c.Loan.TenureMonths,
		AnnualRatePercent: rate,
	}

	if c.Loan.OverrideEmi != "" {
		override, err := decimal.NewFromString(c.Loan.OverrideEmi)
		if err != nil {
			return domain.LoanTerms{}, fmt.Errorf("LOAN_OVERRIDE_EMI is not a number: %w", err)
		}
		terms.OverrideEmi = &override
	}

	if err := terms.Validate(); err != nil {
		return domain.LoanTerms{}, err
	}

	return terms, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Loan.Principal == "" {
		return fmt.Errorf("LOAN_PRINCIPAL is required")
	}
	if c.Loan.TenureMonths < 1 {
		return fmt.Errorf("LOAN_TENURE_MONTHS is required")
	}
	if c.Loan.AnnualRatePercent == "" {
		return fmt.Errorf("LOAN_ANNUAL_RATE is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
