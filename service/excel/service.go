package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	sheetKontering = "Kontering"
	sheetPivot     = "Pivot"
	sheetData      = "Data"

	currencyFormat = `#,##0.00 "kr"`

	pivotInstructions = "Create a pivot table like this:\n" +
		"1. Select cell B4 on the Pivot sheet.\n" +
		"2. Choose Insert > PivotTable > From Table/Range.\n" +
		"3. Enter Data in the Table/Range field.\n" +
		"4. Leave Pivot!$B$4 in the Location field.\n" +
		"5. Drag e.g. CostCenterTag to Rows and CostInBillingCurrency to Values.\n" +
		"You can then explore the data freely!"
)

// Derived tag columns appended to the Data sheet, matching the enriched
// billing line fields.
var tagColumns = []string{
	"BillingTag",
	"CostCenterTag",
	"BillingRGTag",
	"BillingProjTag",
	"BillingAktTag",
	"BillingKatTag",
	"BillingDescriptionTag",
}

// Kontering sheet headers; the two spacer columns stay blank to match the
// accounting template the rows are pasted into.
var konteringHeaders = []string{"Kon/Proj", "", "RG", "Aktivitet", "ProjAkt", "ProjKat", "", "Netto", "Godkänt av"}

func NewService(reportsDir string, logger zerolog.Logger) *service {
	return &service{
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// Export implements ExcelService.
func (s *service) Export(report model.KonteringReport, table model.BillingTable, filename string) (string, error) {
	if filename == "" {
		filename = filepath.Join(s.reportsDir, fmt.Sprintf("azure_cost_report_export_%s.xlsx", periodSuffix(report.Period)))
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetKontering); err != nil {
		return "", fmt.Errorf("failed to set up workbook: %w", err)
	}
	if _, err := f.NewSheet(sheetPivot); err != nil {
		return "", fmt.Errorf("failed to set up workbook: %w", err)
	}
	if _, err := f.NewSheet(sheetData); err != nil {
		return "", fmt.Errorf("failed to set up workbook: %w", err)
	}

	if err := s.writeKontering(f, report); err != nil {
		return "", err
	}
	if err := s.writePivot(f); err != nil {
		return "", err
	}
	if err := s.writeData(f, table); err != nil {
		return "", err
	}

	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	s.logger.Info().Str("path", filename).Msg("workbook created")
	return filename, nil
}

func (s *service) writeKontering(f *excelize.File, report model.KonteringReport) error {
	if err := f.SetCellValue(sheetKontering, "A1", report.PeriodHeader()); err != nil {
		return fmt.Errorf("failed to write kontering sheet: %w", err)
	}

	for col, header := range konteringHeaders {
		if header == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return fmt.Errorf("failed to write kontering sheet: %w", err)
		}
		if err := f.SetCellValue(sheetKontering, cell, header); err != nil {
			return fmt.Errorf("failed to write kontering sheet: %w", err)
		}
	}

	// The comment column is intentionally not exported; comments go to the
	// console output instead.
	for i, row := range report.Rows {
		values := []any{row.KonProj, "", row.RG, row.Aktivitet, row.ProjAkt, row.ProjKat, "", row.Netto.InexactFloat64(), row.GodkantAv}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return fmt.Errorf("failed to write kontering sheet: %w", err)
			}
			if err := f.SetCellValue(sheetKontering, cell, value); err != nil {
				return fmt.Errorf("failed to write kontering sheet: %w", err)
			}
		}
	}
	return nil
}

func (s *service) writePivot(f *excelize.File) error {
	if err := f.SetCellValue(sheetPivot, "A1", pivotInstructions); err != nil {
		return fmt.Errorf("failed to write pivot sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			WrapText:   true,
			Vertical:   "top",
			Horizontal: "left",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write pivot sheet: %w", err)
	}
	if err := f.SetCellStyle(sheetPivot, "A1", "A1", style); err != nil {
		return fmt.Errorf("failed to write pivot sheet: %w", err)
	}
	if err := f.SetColWidth(sheetPivot, "A", "A", 60); err != nil {
		return fmt.Errorf("failed to write pivot sheet: %w", err)
	}
	if err := f.SetRowHeight(sheetPivot, 1, 120); err != nil {
		return fmt.Errorf("failed to write pivot sheet: %w", err)
	}
	return nil
}

func (s *service) writeData(f *excelize.File, table model.BillingTable) error {
	columns := append(append([]string{}, table.Columns...), tagColumns...)

	header := make([]any, len(columns))
	for i, name := range columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetData, "A1", &header); err != nil {
		return fmt.Errorf("failed to write data sheet: %w", err)
	}

	for i, line := range table.Lines {
		row := make([]any, 0, len(columns))
		for col := range table.Columns {
			if col < len(line.Raw) {
				row = append(row, line.Raw[col])
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			line.Tags.Billing,
			line.Tags.CostCenter,
			line.Tags.RG,
			line.Tags.Proj,
			line.Tags.Akt,
			line.Tags.Kat,
			line.Tags.Description,
		)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to write data sheet: %w", err)
		}
		if err := f.SetSheetRow(sheetData, cell, &row); err != nil {
			return fmt.Errorf("failed to write data sheet: %w", err)
		}
	}

	if costCol := columnIndex(table.Columns, "CostInBillingCurrency"); costCol >= 0 {
		letter, err := excelize.ColumnNumberToName(costCol + 1)
		if err != nil {
			return fmt.Errorf("failed to format data sheet: %w", err)
		}
		format := currencyFormat
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
		if err != nil {
			return fmt.Errorf("failed to format data sheet: %w", err)
		}
		if err := f.SetColStyle(sheetData, letter, style); err != nil {
			return fmt.Errorf("failed to format data sheet: %w", err)
		}
	}

	if len(table.Lines) == 0 {
		return nil
	}
	lastColumn, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return fmt.Errorf("failed to create data table: %w", err)
	}
	if err := f.AddTable(sheetData, &excelize.Table{
		Range: fmt.Sprintf("A1:%s%d", lastColumn, len(table.Lines)+1),
		Name:  "Data",
	}); err != nil {
		return fmt.Errorf("failed to create data table: %w", err)
	}
	return nil
}

func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}

// periodSuffix yields the YYYY-MM filename suffix, falling back to the
// current month when the period is unknown.
func periodSuffix(period model.Period) string {
	if period.Known() {
		if t, err := time.Parse("2006-01-02", period.Start); err == nil {
			return t.Format("2006-01")
		}
	}
	return time.Now().Format("2006-01")
}
