package azurecostreport

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/rs/zerolog"
)

type service struct {
	billingAccountID string
	relativePeriod   string
	pollFrequency    time.Duration
	client           *armcostmanagement.GenerateDetailedCostReportClient
	httpClient       *http.Client
	logger           zerolog.Logger
}

// CostReportService drives the asynchronous detailed cost report job: start
// the generation, poll until a terminal status and download the result.
type CostReportService interface {
	// GenerateDetailedReport starts report generation for the billing
	// account and blocks until the report is ready, returning its download
	// URL. period is either empty (the configured relative period applies)
	// or an explicit YYYYMM month.
	GenerateDetailedReport(ctx context.Context, period string) (string, error)

	// DownloadReport streams the report at url into destDir and returns
	// the local file path.
	DownloadReport(ctx context.Context, url, destDir string) (string, error)
}

// Credential is passed to allow reuse across services
type Credential = azcore.TokenCredential
