package rules

import (
	"github.com/gobwas/glob"
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
)

type compiledRule struct {
	rule  model.PatternRule
	globs []glob.Glob
}

type service struct {
	patterns []compiledRule
	general  model.GeneralConfig
	logger   zerolog.Logger
}

type RuleService interface {
	// Match returns the first pattern rule whose glob set matches the
	// resource id, in configuration order.
	Match(resourceID string) (model.PatternRule, bool)
	General() model.GeneralConfig
}

// resourceConfigFile mirrors the layout of kontering_resource_config.json.
type resourceConfigFile struct {
	Konteringsregler []model.PatternRule `json:"konteringsregler"`
}
