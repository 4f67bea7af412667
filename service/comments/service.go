package comments

import (
	"strings"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/samber/lo"
)

// NewService returns a comment synthesizer bound to the approver of record,
// which takes part in the derived group keys.
func NewService(godkantAv string) *service {
	return &service{godkantAv: godkantAv}
}

// Synthesize implements CommentService. For rows still carrying the
// no-description marker it re-derives the row's group key from the enriched
// billing lines and collects the distinct non-blank description tags found
// there.
func (s *service) Synthesize(rows []model.KonteringRow, lines []model.BillingLine, period model.Period) []string {
	if len(rows) == 0 {
		return nil
	}

	// Total row last, excluded from comment output.
	konteringar := rows[:len(rows)-1]

	out := make([]string, 0, len(konteringar))
	for _, row := range konteringar {
		comment := row.Kommentar
		if comment == model.NoDescription {
			comment = s.describeFromLines(row, lines)
		}
		if !strings.Contains(comment, "period:") {
			comment = comment + ", period: " + period.String()
		}
		out = append(out, comment)
	}
	return out
}

func (s *service) describeFromLines(row model.KonteringRow, lines []model.BillingLine) string {
	key := row.Key()

	matching := lo.Filter(lines, func(line model.BillingLine, _ int) bool {
		return s.lineKey(line) == key
	})
	descriptions := lo.Uniq(lo.FilterMap(matching, func(line model.BillingLine, _ int) (string, bool) {
		desc := strings.TrimSpace(line.Tags.Description)
		return desc, desc != ""
	}))

	switch len(descriptions) {
	case 0:
		return model.NoDescription
	case 1:
		return "Regarding: " + descriptions[0]
	default:
		return "Multiple descriptions: " + strings.Join(descriptions, ", ")
	}
}

// lineKey mirrors the aggregation key on the billing line side: project
// tags (already prefixed or purely numeric) land in the project slot, other
// lines group under their cost-center tag.
func (s *service) lineKey(line model.BillingLine) model.GroupKey {
	proj := line.Tags.Proj
	var group string
	switch {
	case strings.HasPrefix(proj, model.ProjectPrefix):
		group = proj
	case proj != "" && isDigits(proj):
		group = model.ProjectPrefix + proj
	default:
		group = line.Tags.RG
	}
	return model.GroupKey{group, line.Tags.Akt, line.Tags.Kat, s.godkantAv}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
