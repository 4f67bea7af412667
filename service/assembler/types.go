package assembler

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service/aggregate"
	"github.com/lulielmo/AzureCostHandling/service/comments"
	"github.com/lulielmo/AzureCostHandling/service/kontering"
	"github.com/lulielmo/AzureCostHandling/service/tags"
	"github.com/rs/zerolog"
)

type service struct {
	tags      tags.TagService
	kontering kontering.KonteringService
	aggregate aggregate.AggregateService
	comments  comments.CommentService
	logger    zerolog.Logger
}

// AssemblerService runs the full allocation pipeline over an ingested
// billing table.
type AssemblerService interface {
	// Assemble enriches the table with tags, resolves and aggregates the
	// konteringar and synthesizes the console comments. The returned table
	// carries the enriched lines for the workbook's Data sheet.
	Assemble(table model.BillingTable) (model.KonteringReport, model.BillingTable)
}
