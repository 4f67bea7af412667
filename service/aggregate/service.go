package aggregate

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/shopspring/decimal"
)

func NewService() *service {
	return &service{}
}

type group struct {
	first   model.KonteringRow
	sum     decimal.Decimal
	comment string
	uniform bool
}

// Aggregate implements AggregateService. The first row seen for a key
// supplies the representative non-amount fields; iteration follows first
// occurrence order so the output is deterministic.
func (s *service) Aggregate(rows []model.KonteringRow) []model.KonteringRow {
	groups := make(map[model.GroupKey]*group)
	var order []model.GroupKey

	for _, row := range rows {
		key := row.Key()
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{
				first:   row,
				sum:     row.Netto,
				comment: row.Kommentar,
				uniform: true,
			}
			order = append(order, key)
			continue
		}
		g.sum = g.sum.Add(row.Netto)
		if g.comment != row.Kommentar {
			g.uniform = false
		}
	}

	out := make([]model.KonteringRow, 0, len(order)+1)
	total := decimal.Zero
	for _, key := range order {
		g := groups[key]
		if g.sum.IsZero() {
			continue
		}
		row := g.first
		row.Netto = g.sum
		if !g.uniform {
			row.Kommentar = model.NoDescription
		}
		out = append(out, row)
		total = total.Add(g.sum)
	}

	out = append(out, model.KonteringRow{
		KonProj: model.TotalLabel,
		Netto:   total,
	})
	return out
}
