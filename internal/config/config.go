package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Pricing     PricingConfig
	StatusFeed  StatusFeedConfig
}

// PricingConfig carries the commercial parameters of the two pricing
// flows. The cart flow and the express checkout flow run with different
// delivery fees and tax rates, so both are configuration, not constants.
type PricingConfig struct {
	CartDeliveryFee     decimal.Decimal
	CartTaxRate         decimal.Decimal
	CheckoutDeliveryFee decimal.Decimal
	CheckoutTaxRate     decimal.Decimal
}

// StatusFeedConfig controls the simulated backend status feed
type StatusFeedConfig struct {
	Interval time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CART_DELIVERY_FEE", "5.00")
	viper.SetDefault("CART_TAX_RATE", "0.10")
	viper.SetDefault("CHECKOUT_DELIVERY_FEE", "3.00")
	viper.SetDefault("CHECKOUT_TAX_RATE", "0.08")
	viper.SetDefault("STATUS_FEED_INTERVAL", "30s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	pricing, err := loadPricing()
	if err != nil {
		return nil, err
	}

	interval, err := time.ParseDuration(viper.GetString("STATUS_FEED_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_FEED_INTERVAL: %w", err)
	}

	return &Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENVIRONMENT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Pricing:     pricing,
		StatusFeed:  StatusFeedConfig{Interval: interval},
	}, nil
}

func loadPricing() (PricingConfig, error) {
	var cfg PricingConfig
	var err error
	if cfg.CartDeliveryFee, err = parseAmount("CART_DELIVERY_FEE"); err != nil {
		return cfg, err
	}
	if cfg.CartTaxRate, err = parseAmount("CART_TAX_RATE"); err != nil {
		return cfg, err
	}
	if cfg.CheckoutDeliveryFee, err = parseAmount("CHECKOUT_DELIVERY_FEE"); err != nil {
		return cfg, err
	}
	if cfg.CheckoutTaxRate, err = parseAmount("CHECKOUT_TAX_RATE"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseAmount(key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(viper.GetString(key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
