package azureconfig

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/lulielmo/AzureCostHandling/service/config"
)

// NewService builds the Azure credential for the run. An explicit service
// principal (AZURE_TENANT_ID / AZURE_CLIENT_ID / AZURE_CLIENT_SECRET) takes
// precedence; otherwise DefaultAzureCredential covers:
// - Environment variables
// - Managed Identity (on Azure VMs, App Service, etc.)
// - Azure CLI (az login)
func NewService(cfg config.Config) (*service, error) {
	if cfg.HasClientSecret() {
		credential, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create client secret credential: %w", err)
		}
		return &service{credential: credential}, nil
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}
	return &service{credential: credential}, nil
}

func (s *service) GetCredential() azcore.TokenCredential {
	return s.credential
}
