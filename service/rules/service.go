package rules

import (
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/goccy/go-json"
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
)

const (
	DefaultResourceConfigPath = "kontering_resource_config.json"
	DefaultGeneralConfigPath  = "kontering_config.json"
)

// NewService loads both rule configuration files. Loading never fails: a
// missing or corrupt resource config yields an empty rule set and a missing
// or corrupt general config falls back to the built-in defaults, both
// logged.
func NewService(resourcePath, generalPath string, logger zerolog.Logger) *service {
	return &service{
		patterns: loadPatternRules(resourcePath, logger),
		general:  loadGeneralConfig(generalPath, logger),
		logger:   logger,
	}
}

// Match implements RuleService. Matching is case-insensitive and first
// match wins, across rules and within a rule's pattern list.
func (s *service) Match(resourceID string) (model.PatternRule, bool) {
	id := strings.ToLower(resourceID)
	for _, compiled := range s.patterns {
		for _, g := range compiled.globs {
			if g.Match(id) {
				return compiled.rule, true
			}
		}
	}
	return model.PatternRule{}, false
}

func (s *service) General() model.GeneralConfig {
	return s.general
}

func loadPatternRules(path string, logger zerolog.Logger) []compiledRule {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Info().Err(err).Str("path", path).Msg("could not read resource kontering rules, continuing without pattern rules")
		return nil
	}

	var file resourceConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Info().Err(err).Str("path", path).Msg("could not parse resource kontering rules, continuing without pattern rules")
		return nil
	}

	compiled := make([]compiledRule, 0, len(file.Konteringsregler))
	for _, rule := range file.Konteringsregler {
		entry := compiledRule{rule: rule}
		for _, pattern := range rule.ResourceIDs {
			g, err := glob.Compile(strings.ToLower(pattern))
			if err != nil {
				logger.Warn().Err(err).Str("pattern", pattern).Msg("skipping invalid resource id pattern")
				continue
			}
			entry.globs = append(entry.globs, g)
		}
		compiled = append(compiled, entry)
	}
	return compiled
}

func loadGeneralConfig(path string, logger zerolog.Logger) model.GeneralConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("could not read kontering config, using built-in defaults")
		return DefaultGeneralConfig()
	}

	var cfg model.GeneralConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("could not parse kontering config, using built-in defaults")
		return DefaultGeneralConfig()
	}
	if cfg.GodkantAv == "" {
		cfg.GodkantAv = DefaultGeneralConfig().GodkantAv
	}
	return cfg
}

// DefaultGeneralConfig is the hardcoded fallback used when the general
// kontering config cannot be loaded.
func DefaultGeneralConfig() model.GeneralConfig {
	return model.GeneralConfig{
		Uppsamlingskontering: model.KonteringTarget{
			KonProj: "P.201726",
			Akt:     "999",
			ProjKat: "5420",
		},
		DevOps: model.DevOpsConfig{
			Default: model.KonteringTarget{
				KonProj: "9999",
			},
		},
		GodkantAv: "John Munthe",
	}
}
