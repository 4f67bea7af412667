package model

// AccountInfo represents the Azure subscription identity the report run is
// associated with.
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}
