package aggregate

import (
	"testing"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(konproj, rg, akt, projkat, godkantAv, kommentar, netto string) model.KonteringRow {
	return model.KonteringRow{
		KonProj:   konproj,
		RG:        rg,
		Aktivitet: akt,
		ProjKat:   projkat,
		GodkantAv: godkantAv,
		Kommentar: kommentar,
		Netto:     decimal.RequireFromString(netto),
	}
}

func TestEmptyInputYieldsZeroTotalOnly(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate(nil)

	require.Len(t, out, 1)
	assert.Equal(t, model.TotalLabel, out[0].KonProj)
	assert.True(t, out[0].Netto.IsZero())
}

func TestProjectRowsGroupAndSum(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate([]model.KonteringRow{
		row("P.100", "", "999", "5000", "John Munthe", "vm costs", "100.10"),
		row("P.100", "", "999", "5000", "John Munthe", "vm costs", "49.90"),
		row("P.200", "", "999", "5000", "John Munthe", "other", "10.00"),
	})

	require.Len(t, out, 3)
	assert.Equal(t, "P.100", out[0].KonProj)
	assert.Equal(t, "150", out[0].Netto.String())
	assert.Equal(t, "vm costs", out[0].Kommentar)
	assert.Equal(t, "P.200", out[1].KonProj)
	assert.Equal(t, model.TotalLabel, out[2].KonProj)
	assert.Equal(t, "160", out[2].Netto.String())
}

func TestZeroSumGroupsAreDropped(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate([]model.KonteringRow{
		row("P.100", "", "999", "5000", "John Munthe", "a", "100.00"),
		row("P.100", "", "999", "5000", "John Munthe", "a", "-100.00"),
		row("P.200", "", "999", "5000", "John Munthe", "b", "25.00"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "P.200", out[0].KonProj)
	assert.Equal(t, model.TotalLabel, out[1].KonProj)
	assert.Equal(t, "25", out[1].Netto.String())
}

func TestDifferingCommentsCollapseToMarker(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate([]model.KonteringRow{
		row("P.100", "", "999", "5000", "John Munthe", "first", "1.00"),
		row("P.100", "", "999", "5000", "John Munthe", "second", "2.00"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, model.NoDescription, out[0].Kommentar)
}

func TestGroupingKeyAsymmetry(t *testing.T) {
	// A project row and a cost-center row sharing literal field values must
	// not collapse into one group: project rows key on (KonProj, Aktivitet,
	// ProjKat, GodkantAv), cost-center rows on (RG, Aktivitet, KonProj,
	// GodkantAv).
	projectRow := row("P.100", "", "999", "4000", "John Munthe", "", "1.00")
	costCenterRow := row("4000", "RG1", "999", "", "John Munthe", "", "2.00")

	assert.NotEqual(t, projectRow.Key(), costCenterRow.Key())

	svc := NewService()
	out := svc.Aggregate([]model.KonteringRow{projectRow, costCenterRow})
	require.Len(t, out, 3)
}

func TestCostCenterRowsGroupOnTheirOwnKey(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate([]model.KonteringRow{
		row("4000", "RG1", "999", "", "John Munthe", "shared", "10.00"),
		row("4000", "RG1", "999", "", "John Munthe", "shared", "5.00"),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "RG1", out[0].RG)
	assert.Equal(t, "15", out[0].Netto.String())
}

func TestAggregationIsLossFreeForNonZeroGroups(t *testing.T) {
	rows := []model.KonteringRow{
		row("P.100", "", "999", "5000", "John Munthe", "", "10.25"),
		row("P.100", "", "999", "5000", "John Munthe", "", "0.75"),
		row("P.200", "", "999", "5000", "John Munthe", "", "3.00"),
		row("P.300", "", "999", "5000", "John Munthe", "", "-3.50"),
		row("P.300", "", "999", "5000", "John Munthe", "", "3.50"),
	}

	input := decimal.Zero
	for _, r := range rows {
		input = input.Add(r.Netto)
	}

	out := NewService().Aggregate(rows)
	retained := decimal.Zero
	for _, r := range out[:len(out)-1] {
		retained = retained.Add(r.Netto)
	}

	// The dropped P.300 group netted exactly zero, so the retained sum
	// still equals the input sum, and the total row matches it.
	assert.True(t, retained.Equal(input))
	assert.True(t, out[len(out)-1].Netto.Equal(retained))
}

func TestFirstRowSuppliesRepresentativeFields(t *testing.T) {
	svc := NewService()

	out := svc.Aggregate([]model.KonteringRow{
		{KonProj: "P.100", Aktivitet: "999", ProjKat: "5000", ProjAkt: "77", GodkantAv: "John Munthe", Kommentar: "x", Netto: decimal.NewFromInt(1)},
		{KonProj: "P.100", Aktivitet: "999", ProjKat: "5000", ProjAkt: "88", GodkantAv: "John Munthe", Kommentar: "x", Netto: decimal.NewFromInt(1)},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "77", out[0].ProjAkt)
}
