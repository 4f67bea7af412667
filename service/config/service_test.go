package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"AZURE_TENANT_ID", "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET",
		"AZURE_BILLING_ACCOUNT_ID", "AZURE_SUBSCRIPTION_ID",
		"REPORT_TIME_PERIOD", "REPORTS_DIR",
		"KONTERING_RESOURCE_CONFIG", "KONTERING_CONFIG",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "Last30Days", cfg.ReportTimePeriod)
	assert.Equal(t, "reports", cfg.ReportsDir)
	assert.Equal(t, "kontering_resource_config.json", cfg.ResourceConfigPath)
	assert.Equal(t, "kontering_config.json", cfg.GeneralConfigPath)
	assert.False(t, cfg.HasBillingAccount())
	assert.False(t, cfg.HasSubscription())
	assert.False(t, cfg.HasClientSecret())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AZURE_TENANT_ID", "tenant")
	t.Setenv("AZURE_CLIENT_ID", "client")
	t.Setenv("AZURE_CLIENT_SECRET", "secret")
	t.Setenv("AZURE_BILLING_ACCOUNT_ID", "12345:67890_2019-05-31")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub-1")
	t.Setenv("REPORT_TIME_PERIOD", "LastMonth")
	t.Setenv("REPORTS_DIR", "/tmp/reports")
	t.Setenv("KONTERING_RESOURCE_CONFIG", "custom_resources.json")
	t.Setenv("KONTERING_CONFIG", "custom_general.json")

	cfg := Load()

	assert.Equal(t, "tenant", cfg.TenantID)
	assert.Equal(t, "12345:67890_2019-05-31", cfg.BillingAccountID)
	assert.Equal(t, "LastMonth", cfg.ReportTimePeriod)
	assert.Equal(t, "/tmp/reports", cfg.ReportsDir)
	assert.Equal(t, "custom_resources.json", cfg.ResourceConfigPath)
	assert.Equal(t, "custom_general.json", cfg.GeneralConfigPath)
	assert.True(t, cfg.HasBillingAccount())
	assert.True(t, cfg.HasSubscription())
	assert.True(t, cfg.HasClientSecret())
}
