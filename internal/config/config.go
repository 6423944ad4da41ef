package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	RedisURL string

	// Marketplace account
	SellerID int64
	BrandID  int64

	// Local analytics export
	AnalyticsExportPath string

	// Refresh behaviour
	RefreshOnStart bool
}

func Load() *Config {
	sellerID, _ := strconv.ParseInt(getEnv("SELLER_ID", "4112047"), 10, 64)
	brandID, _ := strconv.ParseInt(getEnv("BRAND_ID", "4112047"), 10, 64)
	refreshOnStart, _ := strconv.ParseBool(getEnv("REFRESH_ON_START", "true"))

	return &Config{
		// Server
		Port:        getEnv("PORT", "8087"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Marketplace account
		SellerID: sellerID,
		BrandID:  brandID,

		// Local analytics export
		AnalyticsExportPath: getEnv("ANALYTICS_EXPORT_PATH", "local_data/analytics_export.json"),

		// Refresh behaviour
		RefreshOnStart: refreshOnStart,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
