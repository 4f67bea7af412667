package comments

import (
	"github.com/lulielmo/AzureCostHandling/model"
)

type service struct {
	godkantAv string
}

// CommentService back-derives human-readable justifications for aggregated
// kontering rows that ended up without a description.
type CommentService interface {
	// Synthesize returns one comment per aggregated row excluding the
	// total row, in row order, each suffixed with the billing period.
	Synthesize(rows []model.KonteringRow, lines []model.BillingLine, period model.Period) []string
}
