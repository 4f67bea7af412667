package excel

import (
	"path/filepath"
	"testing"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() model.KonteringReport {
	return model.KonteringReport{
		Period: model.Period{Start: "2024-01-01", End: "2024-01-31"},
		Rows: []model.KonteringRow{
			{KonProj: "P.100", Aktivitet: "999", ProjKat: "5000", Netto: decimal.RequireFromString("150.00"), GodkantAv: "John Munthe"},
			{KonProj: model.TotalLabel, Netto: decimal.RequireFromString("150.00")},
		},
	}
}

func sampleTable() model.BillingTable {
	return model.BillingTable{
		Columns: []string{"ResourceId", "CostInBillingCurrency", "Tags"},
		Lines: []model.BillingLine{
			{
				Raw:  []string{"/x/vm-prod-01", "150.00", `{"billing-proj": "100"}`},
				Tags: model.BillingTags{Proj: "100"},
			},
		},
	}
}

func TestExportWritesThreeSheets(t *testing.T) {
	svc := NewService(t.TempDir(), zerolog.Nop())
	out := filepath.Join(t.TempDir(), "export.xlsx")

	path, err := svc.Export(sampleReport(), sampleTable(), out)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{sheetKontering, sheetPivot, sheetData}, f.GetSheetList())

	header, err := f.GetCellValue(sheetKontering, "A1")
	require.NoError(t, err)
	assert.Equal(t, "This report covers the period: 2024-01-01 to 2024-01-31", header)

	konproj, err := f.GetCellValue(sheetKontering, "A3")
	require.NoError(t, err)
	assert.Equal(t, "P.100", konproj)

	total, err := f.GetCellValue(sheetKontering, "A4")
	require.NoError(t, err)
	assert.Equal(t, model.TotalLabel, total)

	// Data sheet carries raw columns plus the derived tag columns.
	dataHeader, err := f.GetRows(sheetData)
	require.NoError(t, err)
	require.NotEmpty(t, dataHeader)
	assert.Len(t, dataHeader[0], 3+len(tagColumns))
	assert.Equal(t, "BillingProjTag", dataHeader[0][6])
}

func TestExportDefaultFilenameUsesPeriod(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, zerolog.Nop())

	path, err := svc.Export(sampleReport(), sampleTable(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "azure_cost_report_export_2024-01.xlsx"), path)
}

func TestExportEmptyTable(t *testing.T) {
	svc := NewService(t.TempDir(), zerolog.Nop())
	out := filepath.Join(t.TempDir(), "empty.xlsx")

	_, err := svc.Export(sampleReport(), model.BillingTable{Columns: []string{"ResourceId"}}, out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetData)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
