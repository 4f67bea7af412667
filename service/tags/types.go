package tags

import (
	"github.com/lulielmo/AzureCostHandling/model"
)

type service struct{}

type TagService interface {
	Extract(raw string) model.BillingTags
	Enrich(line model.BillingLine) model.BillingLine
	EnrichAll(lines []model.BillingLine) []model.BillingLine
}
