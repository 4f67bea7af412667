package tags

import (
	"testing"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.BillingTags
	}{
		{
			name: "valid JSON with all keys",
			raw:  `{"Billing": "team-a", "CostCenter": "CC-1", "Billing-RG": "RG1", "Billing-proj": "201726", "Billing-akt": "999", "Billing-kat": "5420", "Billing-description": "Server A"}`,
			want: model.BillingTags{
				Billing:     "team-a",
				CostCenter:  "CC-1",
				RG:          "RG1",
				Proj:        "201726",
				Akt:         "999",
				Kat:         "5420",
				Description: "Server A",
			},
		},
		{
			name: "single quoted near-JSON",
			raw:  `{'billing': 'team-b', 'costcenter': 'CC-2'}`,
			want: model.BillingTags{Billing: "team-b", CostCenter: "CC-2"},
		},
		{
			name: "keys are matched case-insensitively",
			raw:  `{"BILLING-DESCRIPTION": "Database", "bIlLiNg": "x"}`,
			want: model.BillingTags{Billing: "x", Description: "Database"},
		},
		{
			name: "non-string values are coerced",
			raw:  `{"billing-proj": 201726, "billing": true}`,
			want: model.BillingTags{Proj: "201726", Billing: "true"},
		},
		{
			name: "unrecognized keys are ignored",
			raw:  `{"environment": "prod", "billing": "team-a"}`,
			want: model.BillingTags{Billing: "team-a"},
		},
		{
			name: "empty input",
			raw:  "",
			want: model.BillingTags{},
		},
		{
			name: "unbalanced blob without quoted keys yields defaults",
			raw:  `{billing: 'X'`,
			want: model.BillingTags{},
		},
		{
			name: "regex fallback recovers quoted keys from broken blobs",
			raw:  `"Billing": "team-a", "Billing-proj": "201726", {{{`,
			want: model.BillingTags{Billing: "team-a", Proj: "201726"},
		},
		{
			name: "not JSON at all",
			raw:  "hello world",
			want: model.BillingTags{},
		},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Extract(tt.raw))
		})
	}
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	svc := NewService()
	line := model.BillingLine{TagsRaw: `{"billing": "team-a"}`}

	enriched := svc.Enrich(line)

	require.Equal(t, "team-a", enriched.Tags.Billing)
	assert.Equal(t, model.BillingTags{}, line.Tags)
}

func TestEnrichIsIdempotent(t *testing.T) {
	svc := NewService()
	line := model.BillingLine{TagsRaw: `{"billing": "team-a", "billing-description": "Server A"}`}

	once := svc.Enrich(line)
	twice := svc.Enrich(once)

	assert.Equal(t, once, twice)
}
