package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BillingConfig holds the display labels and defaults the billing engine
// reads but does not define. The defaults match the labels the payslips have
// always been printed with.
type BillingConfig struct {
	RentLabel         string
	UnderpaymentLabel string
	OverpaymentLabel  string
	AdjustmentLabel   string
	CurrencySymbol    string
	CurrencySeparator string
	CurrencyPosition  string // "before" or "after"
	DefaultDueDay     int    // day of month a payslip falls due when nothing else applies
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	RateLimit    string // ulule/limiter format, e.g. "100-M"
	Billing      BillingConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("RENT_LABEL", "Czynsz")
	viper.SetDefault("UNDERPAYMENT_LABEL", "Zaległe")
	viper.SetDefault("OVERPAYMENT_LABEL", "Nadpłata")
	viper.SetDefault("ADJUSTMENT_LABEL", "Wyrównanie")
	viper.SetDefault("CURRENCY_SYMBOL", "zł")
	viper.SetDefault("CURRENCY_SEPARATOR", ",")
	viper.SetDefault("CURRENCY_POSITION", "after")
	viper.SetDefault("DEFAULT_DUE_DAY", 10)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.Billing = BillingConfig{
		RentLabel:         viper.GetString("RENT_LABEL"),
		UnderpaymentLabel: viper.GetString("UNDERPAYMENT_LABEL"),
		OverpaymentLabel:  viper.GetString("OVERPAYMENT_LABEL"),
		AdjustmentLabel:   viper.GetString("ADJUSTMENT_LABEL"),
		CurrencySymbol:    viper.GetString("CURRENCY_SYMBOL"),
		CurrencySeparator: viper.GetString("CURRENCY_SEPARATOR"),
		CurrencyPosition:  viper.GetString("CURRENCY_POSITION"),
		DefaultDueDay:     viper.GetInt("DEFAULT_DUE_DAY"),
	}

	if cfg.Billing.DefaultDueDay < 1 || cfg.Billing.DefaultDueDay > 28 {
		return nil, fmt.Errorf("DEFAULT_DUE_DAY must be between 1 and 28, got %d", cfg.Billing.DefaultDueDay)
	}

	return cfg, nil
}
