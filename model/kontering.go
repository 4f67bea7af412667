package model

import "github.com/shopspring/decimal"

// Contract literals shared by the resolver, aggregator, comment synthesizer
// and the exported workbook.
const (
	// NoDescription marks rows and groups without a usable description.
	NoDescription = "no description provided"
	// TotalLabel is the KonProj value of the synthetic total row.
	TotalLabel = "TOTAL"
	// ProjectPrefix is the project-code naming convention; rows whose
	// KonProj carries it are grouped as project konteringar.
	ProjectPrefix = "P."
)

// KonteringRow is one accounting allocation entry. Before aggregation there
// is one per billing line; afterwards one per group plus the total row.
type KonteringRow struct {
	KonProj   string
	RG        string
	Aktivitet string
	ProjAkt   string
	ProjKat   string
	Netto     decimal.Decimal
	GodkantAv string
	Kommentar string
}

// IsProject reports whether the row is a project kontering rather than a
// cost-center (rörelsegren) kontering.
func (r KonteringRow) IsProject() bool {
	return len(r.KonProj) >= len(ProjectPrefix) && r.KonProj[:len(ProjectPrefix)] == ProjectPrefix
}

// GroupKey is the composite key konteringar are aggregated under. Project
// rows carry their category in the third slot, cost-center rows carry the
// KonProj slot there instead.
type GroupKey [4]string

// Key derives the aggregation key for the row.
func (r KonteringRow) Key() GroupKey {
	if r.IsProject() {
		return GroupKey{r.KonProj, r.Aktivitet, r.ProjKat, r.GodkantAv}
	}
	return GroupKey{r.RG, r.Aktivitet, r.KonProj, r.GodkantAv}
}

// KonteringReport is the assembled result of a full pipeline run.
type KonteringReport struct {
	Period Period
	// Rows holds the aggregated konteringar, total row last.
	Rows []KonteringRow
	// Warnings accumulated during rule resolution, surfaced to the caller
	// rather than only logged.
	Warnings []string
	// Comments are the numbered console snippets, one per row excluding
	// the total row.
	Comments []string
}

// PeriodHeader renders the header line written to the Kontering sheet.
func (r KonteringReport) PeriodHeader() string {
	if !r.Period.Known() {
		return "Period unknown (billing period dates missing)"
	}
	return "This report covers the period: " + r.Period.String()
}
