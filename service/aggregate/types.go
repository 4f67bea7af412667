package aggregate

import (
	"github.com/lulielmo/AzureCostHandling/model"
)

type service struct{}

// AggregateService sums raw kontering rows into one row per group key.
type AggregateService interface {
	// Aggregate groups rows by their composite key, sums the amounts
	// exactly, drops groups that net to zero and appends the total row.
	// Empty input yields a table holding only a zero total row.
	Aggregate(rows []model.KonteringRow) []model.KonteringRow
}
