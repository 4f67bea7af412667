package assembler

import (
	"time"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service/aggregate"
	"github.com/lulielmo/AzureCostHandling/service/comments"
	"github.com/lulielmo/AzureCostHandling/service/kontering"
	"github.com/lulielmo/AzureCostHandling/service/tags"
	"github.com/rs/zerolog"
)

func NewService(
	tagService tags.TagService,
	konteringService kontering.KonteringService,
	aggregateService aggregate.AggregateService,
	commentService comments.CommentService,
	logger zerolog.Logger,
) *service {
	return &service{
		tags:      tagService,
		kontering: konteringService,
		aggregate: aggregateService,
		comments:  commentService,
		logger:    logger,
	}
}

// Assemble implements AssemblerService.
func (s *service) Assemble(table model.BillingTable) (model.KonteringReport, model.BillingTable) {
	table.Lines = s.tags.EnrichAll(table.Lines)

	period := billingPeriod(table.Lines)

	rows, warnings := s.kontering.Resolve(table.Lines)
	aggregated := s.aggregate.Aggregate(rows)
	commentList := s.comments.Synthesize(aggregated, table.Lines, period)

	return model.KonteringReport{
		Period:   period,
		Rows:     aggregated,
		Warnings: warnings,
		Comments: commentList,
	}, table
}

// Date layouts seen in detailed cost report exports.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006-01-02T15:04:05Z",
	time.RFC3339,
}

// billingPeriod derives the period bounds as the earliest billing period
// start and the latest end across all lines.
func billingPeriod(lines []model.BillingLine) model.Period {
	var start, end time.Time
	for _, line := range lines {
		if t, ok := parseDate(line.BillingPeriodStartDate); ok && (start.IsZero() || t.Before(start)) {
			start = t
		}
		if t, ok := parseDate(line.BillingPeriodEndDate); ok && (end.IsZero() || t.After(end)) {
			end = t
		}
	}
	if start.IsZero() || end.IsZero() {
		return model.Period{}
	}
	return model.Period{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
