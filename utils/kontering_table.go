package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/lulielmo/AzureCostHandling/model"
)

// DrawKonteringTable prints the aggregated kontering rows, the warnings
// raised while resolving them and the numbered Medius comments.
func DrawKonteringTable(report model.KonteringReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 KONTERING"))
	fmt.Printf(" %s\n", text.FgBlue.Sprint(report.PeriodHeader()))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Kon/Proj", "RG", "Aktivitet", "ProjAkt", "ProjKat", "Netto", "Godkänt av", "Kommentar"})

	for _, row := range report.Rows {
		netto := text.FgGreen.Sprint(row.Netto.StringFixed(2))
		if row.Netto.IsNegative() {
			netto = text.FgRed.Sprint(row.Netto.StringFixed(2))
		}

		name := row.KonProj
		if row.KonProj == model.TotalLabel {
			name = text.FgHiYellow.Sprint(row.KonProj)
			netto = text.FgHiYellow.Sprint(row.Netto.StringFixed(2))
		}

		tw.AppendRow(table.Row{name, row.RG, row.Aktivitet, row.ProjAkt, row.ProjKat, netto, row.GodkantAv, row.Kommentar})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())

	for _, warning := range report.Warnings {
		fmt.Printf(" %s %s\n", text.FgHiYellow.Sprint("⚠"), text.FgYellow.Sprint(warning))
	}
}

// PrintMediusComments prints the numbered comment snippets meant for manual
// pasting into the accounting tool.
func PrintMediusComments(comments []string) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint("Comments for pasting into Medius:"))
	for i, comment := range comments {
		fmt.Printf("%d. %s\n", i+1, comment)
	}
}
