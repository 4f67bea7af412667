package kontering

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service/rules"
	"github.com/rs/zerolog"
)

type service struct {
	rules  rules.RuleService
	logger zerolog.Logger
}

// KonteringService resolves billing lines into raw (pre-aggregation)
// kontering rows.
type KonteringService interface {
	// Resolve maps every billing line to exactly one kontering row and
	// returns the warnings raised while doing so. Warnings are returned to
	// the caller so they can be surfaced in the report, not only logged.
	Resolve(lines []model.BillingLine) ([]model.KonteringRow, []string)
}
