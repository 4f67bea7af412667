package tags

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lulielmo/AzureCostHandling/model"
)

// The recognized tag keys, compared case-insensitively.
const (
	keyBilling     = "billing"
	keyCostCenter  = "costcenter"
	keyRG          = "billing-rg"
	keyProj        = "billing-proj"
	keyAkt         = "billing-akt"
	keyKat         = "billing-kat"
	keyDescription = "billing-description"
)

// Fallback extraction for tag blobs that are not valid JSON even after
// quote normalization. Each key is matched independently so a partially
// broken blob still yields the tags it does carry.
var fallbackPatterns = map[string]*regexp.Regexp{
	keyBilling:     fallbackPattern(keyBilling),
	keyCostCenter:  fallbackPattern(keyCostCenter),
	keyRG:          fallbackPattern(keyRG),
	keyProj:        fallbackPattern(keyProj),
	keyAkt:         fallbackPattern(keyAkt),
	keyKat:         fallbackPattern(keyKat),
	keyDescription: fallbackPattern(keyDescription),
}

func fallbackPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)"` + regexp.QuoteMeta(key) + `"\s*:\s*"([^"]+)"`)
}

func NewService() *service {
	return &service{}
}

// Extract parses the raw tag blob into the seven business tags. It never
// fails: unparseable input yields empty fields.
func (s *service) Extract(raw string) model.BillingTags {
	var tags model.BillingTags
	if strings.TrimSpace(raw) == "" {
		return tags
	}

	// Azure tag exports frequently carry single-quoted near-JSON.
	normalized := strings.ReplaceAll(raw, "'", `"`)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(normalized), &parsed); err == nil {
		for k, v := range parsed {
			assign(&tags, strings.ToLower(k), coerceString(v))
		}
		return tags
	}

	for key, pattern := range fallbackPatterns {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			assign(&tags, key, m[1])
		}
	}
	return tags
}

// Enrich returns a copy of the line with its tags populated. The input is
// not mutated, and enriching an already enriched line is a no-op.
func (s *service) Enrich(line model.BillingLine) model.BillingLine {
	line.Tags = s.Extract(line.TagsRaw)
	return line
}

func (s *service) EnrichAll(lines []model.BillingLine) []model.BillingLine {
	enriched := make([]model.BillingLine, len(lines))
	for i, line := range lines {
		enriched[i] = s.Enrich(line)
	}
	return enriched
}

func assign(tags *model.BillingTags, key, value string) {
	switch key {
	case keyBilling:
		tags.Billing = value
	case keyCostCenter:
		tags.CostCenter = value
	case keyRG:
		tags.RG = value
	case keyProj:
		tags.Proj = value
	case keyAkt:
		tags.Akt = value
	case keyKat:
		tags.Kat = value
	case keyDescription:
		tags.Description = value
	}
}

func coerceString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
