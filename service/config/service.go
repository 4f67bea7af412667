package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/lulielmo/AzureCostHandling/service/rules"
)

// Load reads configuration from a .env file (when present) and the
// environment. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		TenantID:           os.Getenv("AZURE_TENANT_ID"),
		ClientID:           os.Getenv("AZURE_CLIENT_ID"),
		ClientSecret:       os.Getenv("AZURE_CLIENT_SECRET"),
		BillingAccountID:   os.Getenv("AZURE_BILLING_ACCOUNT_ID"),
		SubscriptionID:     os.Getenv("AZURE_SUBSCRIPTION_ID"),
		ReportTimePeriod:   getEnvOrDefault("REPORT_TIME_PERIOD", "Last30Days"),
		ReportsDir:         getEnvOrDefault("REPORTS_DIR", "reports"),
		ResourceConfigPath: getEnvOrDefault("KONTERING_RESOURCE_CONFIG", rules.DefaultResourceConfigPath),
		GeneralConfigPath:  getEnvOrDefault("KONTERING_CONFIG", rules.DefaultGeneralConfigPath),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
