package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/lulielmo/AzureCostHandling/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawSubtotalTable prints one cost breakdown, largest subtotal first.
func DrawSubtotalTable(breakdown model.CostBreakdown) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{breakdown.Column, "Cost"})

	for _, subtotal := range orderedSubtotals(breakdown) {
		tw.AppendRow(table.Row{subtotal.Name, text.FgGreen.Sprint(subtotal.Amount.StringFixed(2))})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

// DrawSubtotalChart renders the top subtotals of a breakdown as a bar
// chart, colored by rank.
func DrawSubtotalChart(breakdown model.CostBreakdown) {
	subtotals := orderedSubtotals(breakdown)
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}
	if len(subtotals) > len(palette) {
		subtotals = subtotals[:len(palette)]
	}
	if len(subtotals) == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 📊 COSTS BY %s", breakdown.Column))

	bc := barchart.New(110, 18)
	for i, subtotal := range subtotals {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %s", subtotal.Name, subtotal.Amount.StringFixed(2)),
			Values: []barchart.BarValue{
				{
					Value: subtotal.Amount.InexactFloat64(),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

func orderedSubtotals(breakdown model.CostBreakdown) []model.Subtotal {
	ordered := make([]model.Subtotal, len(breakdown.Subtotals))
	copy(ordered, breakdown.Subtotals)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Amount.GreaterThan(ordered[j].Amount)
	})
	return ordered
}
