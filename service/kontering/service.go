package kontering

import (
	"fmt"
	"strings"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service/rules"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// meterCategoryDevOps selects the DevOps mapping branch of the resolver.
const meterCategoryDevOps = "Azure DevOps"

func NewService(ruleService rules.RuleService, logger zerolog.Logger) *service {
	return &service{
		rules:  ruleService,
		logger: logger,
	}
}

// Resolve implements KonteringService. Rule precedence is fixed: explicit
// resource pattern rules first, then the DevOps mapping for Azure DevOps
// meters, then the catch-all bucket.
func (s *service) Resolve(lines []model.BillingLine) ([]model.KonteringRow, []string) {
	general := s.rules.General()

	rows := make([]model.KonteringRow, 0, len(lines))
	var warnings []string

	for _, line := range lines {
		if rule, ok := s.rules.Match(line.ResourceID); ok {
			rows = append(rows, buildRow(rule.KonteringTarget, line.CostInBillingCurrency, rule.Beskrivning, general.GodkantAv, &warnings))
			continue
		}

		if line.MeterCategory == meterCategoryDevOps {
			mapping := resolveDevOpsMapping(general.DevOps, line.MeterSubCategory, line.MeterName)
			comment := mapping.Beskrivning
			if comment == "" {
				comment = fmt.Sprintf("Regarding Azure DevOps: %s (%s)", line.MeterSubCategory, line.MeterName)
			}
			rows = append(rows, buildRow(mapping, line.CostInBillingCurrency, comment, general.GodkantAv, &warnings))
			continue
		}

		comment := general.Uppsamlingskontering.Beskrivning
		if comment == "" {
			comment = line.Tags.Description
		}
		if comment == "" {
			comment = model.NoDescription
		}
		rows = append(rows, buildRow(general.Uppsamlingskontering, line.CostInBillingCurrency, comment, general.GodkantAv, &warnings))
	}

	for _, w := range warnings {
		s.logger.Warn().Msg(w)
	}
	return rows, warnings
}

// resolveDevOpsMapping looks for an exact (subcategory, meter name) match,
// case-insensitively, and falls back to the default mapping. DevOps lines
// never fall through to the catch-all bucket.
func resolveDevOpsMapping(cfg model.DevOpsConfig, subCat, meterName string) model.KonteringTarget {
	wantSub := strings.ToLower(strings.TrimSpace(subCat))
	wantMeter := strings.ToLower(strings.TrimSpace(meterName))
	for _, m := range cfg.Mappings {
		if strings.ToLower(strings.TrimSpace(m.SubCat)) == wantSub &&
			strings.ToLower(strings.TrimSpace(m.MeterName)) == wantMeter {
			return m.KonteringTarget
		}
	}
	return cfg.Default
}

// buildRow constructs a kontering row from a resolved target:
//   - konproj set: project kontering, Kon/Proj = konproj, ProjKat = projkat.
//   - rg set: rörelsegren kontering, RG = rg, the category moves into the
//     Kon/Proj slot and ProjKat is left blank.
//   - neither set: the category lands in Kon/Proj as a fallback bucket.
//   - both set: warn and treat as project kontering.
func buildRow(target model.KonteringTarget, belopp decimal.Decimal, kommentar, godkantAv string, warnings *[]string) model.KonteringRow {
	konproj := strings.TrimSpace(target.KonProj)
	rg := strings.TrimSpace(target.RG)
	akt := strings.TrimSpace(target.Akt)
	projakt := strings.TrimSpace(target.ProjAkt)
	projkat := strings.TrimSpace(target.ProjKat)

	row := model.KonteringRow{
		Aktivitet: akt,
		ProjAkt:   projakt,
		Netto:     belopp,
		GodkantAv: godkantAv,
		Kommentar: kommentar,
	}

	switch {
	case konproj != "" && rg != "":
		*warnings = append(*warnings, fmt.Sprintf(
			"kontering rule has both project code and cost-center group set (konproj=%s, rg=%s); treated as project-based",
			konproj, rg))
		row.KonProj = konproj
		row.ProjKat = projkat
	case konproj != "":
		row.KonProj = konproj
		row.ProjKat = projkat
	case rg != "":
		row.RG = rg
		row.KonProj = projkat
	default:
		row.KonProj = projkat
	}
	return row
}
