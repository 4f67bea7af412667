package ingest

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
)

type service struct {
	logger zerolog.Logger
}

// IngestService reads a downloaded detailed cost report, compressed or
// plain, into a billing table.
type IngestService interface {
	ReadReport(path string) (model.BillingTable, error)
}

// Column names of the detailed cost report export.
const (
	colResourceID             = "ResourceId"
	colCost                   = "CostInBillingCurrency"
	colMeterCategory          = "MeterCategory"
	colMeterSubCategory       = "MeterSubCategory"
	colMeterName              = "MeterName"
	colResourceGroup          = "ResourceGroup"
	colSubscriptionName       = "SubscriptionName"
	colTags                   = "Tags"
	colBillingPeriodStartDate = "BillingPeriodStartDate"
	colBillingPeriodEndDate   = "BillingPeriodEndDate"
)
