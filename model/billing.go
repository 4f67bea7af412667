package model

import "github.com/shopspring/decimal"

// BillingTags holds the business tags extracted from a billing line's raw
// tag blob. All fields default to the empty string when the blob is missing
// or cannot be parsed.
type BillingTags struct {
	Billing     string
	CostCenter  string
	RG          string
	Proj        string
	Akt         string
	Kat         string
	Description string
}

// BillingLine is one row of the detailed Azure cost report.
type BillingLine struct {
	ResourceID             string
	CostInBillingCurrency  decimal.Decimal
	MeterCategory          string
	MeterSubCategory       string
	MeterName              string
	ResourceGroup          string
	SubscriptionName       string
	TagsRaw                string
	BillingPeriodStartDate string
	BillingPeriodEndDate   string

	// Tags is populated once by the tag extractor; the raw fields above are
	// never mutated after ingestion.
	Tags BillingTags

	// Raw keeps the full CSV record so unknown columns survive into the
	// Data sheet of the exported workbook.
	Raw []string
}

// BillingTable is the in-memory form of an ingested cost report.
type BillingTable struct {
	Columns []string
	Lines   []BillingLine
}

// Period is the billing period covered by a report.
type Period struct {
	Start string
	End   string
}

// String renders the period the way it appears in comments and the
// workbook header, e.g. "2024-01-01 to 2024-01-31".
func (p Period) String() string {
	if p.Start == "" || p.End == "" {
		return "unknown"
	}
	return p.Start + " to " + p.End
}

// Known reports whether both period bounds could be derived.
func (p Period) Known() bool {
	return p.Start != "" && p.End != ""
}
