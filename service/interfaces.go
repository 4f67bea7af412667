package service

import (
	"context"

	"github.com/lulielmo/AzureCostHandling/model"
)

// IdentityService provides the Azure account identity the report run is
// associated with.
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
