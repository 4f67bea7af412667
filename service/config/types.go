package config

// Config holds the environment-derived settings for a run. It is built
// once at startup and passed explicitly to the services that need it.
type Config struct {
	// Azure credentials; when all three are set a client secret credential
	// is used, otherwise the default credential chain applies.
	TenantID     string
	ClientID     string
	ClientSecret string

	// BillingAccountID scopes the detailed cost report generation.
	BillingAccountID string

	// SubscriptionID is optional and only used to resolve the subscription
	// display name for the run banner.
	SubscriptionID string

	// ReportTimePeriod is the relative period used when no explicit YYYYMM
	// period is given: Last30Days, Last7Days or LastMonth.
	ReportTimePeriod string

	// ReportsDir is where downloaded reports and exported workbooks land.
	ReportsDir string

	// ResourceConfigPath and GeneralConfigPath locate the kontering rule
	// files.
	ResourceConfigPath string
	GeneralConfigPath  string
}

// HasBillingAccount reports whether report generation is possible.
func (c Config) HasBillingAccount() bool {
	return c.BillingAccountID != ""
}

// HasSubscription reports whether the identity lookup is configured.
func (c Config) HasSubscription() bool {
	return c.SubscriptionID != ""
}

// HasClientSecret reports whether explicit service principal credentials
// are configured.
func (c Config) HasClientSecret() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != ""
}
