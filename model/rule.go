package model

// KonteringTarget carries the allocation fields shared by every rule
// variant. At most one of KonProj and RG is meant to be set; the resolver
// warns and treats the row as project-based when both are.
type KonteringTarget struct {
	KonProj     string `json:"konproj"`
	RG          string `json:"rg"`
	Akt         string `json:"akt"`
	ProjAkt     string `json:"projakt"`
	ProjKat     string `json:"projkat"`
	Beskrivning string `json:"beskrivning"`
}

// PatternRule allocates lines whose resource id matches one of its glob
// patterns. Rules are evaluated in configuration order, first match wins.
type PatternRule struct {
	KonteringTarget
	ResourceIDs []string `json:"resource_ids"`
}

// DevOpsMapping allocates Azure DevOps lines keyed by the exact
// (subcategory, meter name) pair, compared case-insensitively.
type DevOpsMapping struct {
	KonteringTarget
	SubCat    string `json:"subcat"`
	MeterName string `json:"metername"`
}

// DevOpsConfig is the DevOps section of the general kontering config.
type DevOpsConfig struct {
	Default  KonteringTarget `json:"default"`
	Mappings []DevOpsMapping `json:"mappings"`
}

// GeneralConfig is the general kontering configuration: the catch-all
// bucket, the DevOps mappings and the approver of record.
type GeneralConfig struct {
	Uppsamlingskontering KonteringTarget `json:"uppsamlingskontering"`
	DevOps               DevOpsConfig    `json:"devops"`
	GodkantAv            string          `json:"godkant_av"`
}
