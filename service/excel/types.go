package excel

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
)

type service struct {
	reportsDir string
	logger     zerolog.Logger
}

// ExcelService writes the assembled report to a three-sheet workbook:
// Kontering (period header + kontering table), Pivot (instructions) and
// Data (the full enriched billing table).
type ExcelService interface {
	// Export writes the workbook and returns its path. An empty filename
	// derives one from the billing period.
	Export(report model.KonteringReport, table model.BillingTable, filename string) (string, error)
}
