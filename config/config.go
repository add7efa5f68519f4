package config

import (
	"os"
	"strconv"
)

// Config carries everything injected from the environment. The admin
// credential lives here rather than in code; the defaults below are the
// development pair and should be overridden in any shared deployment.
type Config struct {
	Port          string
	StorePath     string
	AdminEmail    string
	AdminPassword string

	// TaxRate is applied to the cart subtotal at checkout (0.08 = 8%).
	TaxRate float64
	// CODFee is the flat surcharge for cash-on-delivery orders.
	CODFee float64
}

// Load reads the environment. godotenv is expected to have populated it from
// .env already.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		StorePath:     getEnv("STORE_PATH", "./storefront.db"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "hassan@admin.panel"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "1234567890"),
		TaxRate:       getEnvFloat("TAX_RATE", 0.08),
		CODFee:        getEnvFloat("COD_FEE", 2.99),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
