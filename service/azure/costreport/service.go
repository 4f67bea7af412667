package azurecostreport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/rs/zerolog"
)

const defaultPollFrequency = 10 * time.Second

func NewService(billingAccountID, relativePeriod string, credential Credential, logger zerolog.Logger) (*service, error) {
	client, err := armcostmanagement.NewGenerateDetailedCostReportClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create detailed cost report client: %w", err)
	}

	return &service{
		billingAccountID: billingAccountID,
		relativePeriod:   relativePeriod,
		pollFrequency:    defaultPollFrequency,
		client:           client,
		httpClient:       http.DefaultClient,
		logger:           logger,
	}, nil
}

// GenerateDetailedReport implements CostReportService.
func (s *service) GenerateDetailedReport(ctx context.Context, period string) (string, error) {
	start, end, err := resolveTimePeriod(period, s.relativePeriod, time.Now())
	if err != nil {
		return "", err
	}

	scope := fmt.Sprintf("/providers/Microsoft.Billing/billingAccounts/%s", s.billingAccountID)
	s.logger.Info().
		Str("scope", scope).
		Str("from", start.Format("2006-01-02")).
		Str("to", end.Format("2006-01-02")).
		Msg("generating detailed cost report")

	definition := armcostmanagement.GenerateDetailedCostReportDefinition{
		Metric: to.Ptr(armcostmanagement.GenerateDetailedCostReportMetricTypeActualCost),
		TimePeriod: &armcostmanagement.GenerateDetailedCostReportTimePeriod{
			Start: to.Ptr(start.Format("2006-01-02")),
			End:   to.Ptr(end.Format("2006-01-02")),
		},
	}

	poller, err := s.client.BeginCreateOperation(ctx, scope, definition, nil)
	if err != nil {
		return "", fmt.Errorf("failed to start report generation: %w", err)
	}

	s.logger.Info().Msg("waiting for the report to be generated")
	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: s.pollFrequency})
	if err != nil {
		return "", fmt.Errorf("report generation failed: %w", err)
	}

	if resp.Properties == nil || resp.Properties.DownloadURL == nil || *resp.Properties.DownloadURL == "" {
		return "", fmt.Errorf("report generation finished without a download URL")
	}

	s.logger.Info().Msg("report generated successfully")
	return *resp.Properties.DownloadURL, nil
}

// DownloadReport implements CostReportService. The download URL carries its
// own SAS authorization, so a plain GET is enough.
func (s *service) DownloadReport(ctx context.Context, url, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	filename := filepath.Join(destDir, fmt.Sprintf("azure_cost_report_%s.csv.gz", time.Now().Format("20060102_150405")))
	s.logger.Info().Str("path", filename).Msg("downloading report")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("report download returned status %s", resp.Status)
	}

	out, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	s.logger.Info().Str("path", filename).Msg("report downloaded successfully")
	return filename, nil
}

// resolveTimePeriod turns either an explicit YYYYMM month or the configured
// relative period into report bounds.
func resolveTimePeriod(period, relative string, now time.Time) (time.Time, time.Time, error) {
	if period != "" {
		month, err := time.Parse("200601", period)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q, expected YYYYMM", period)
		}
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return start, end, nil
	}

	switch relative {
	case "Last30Days":
		return now.AddDate(0, 0, -30), now, nil
	case "Last7Days":
		return now.AddDate(0, 0, -7), now, nil
	case "LastMonth":
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfThisMonth.AddDate(0, -1, 0), now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report time period %q", relative)
	}
}
