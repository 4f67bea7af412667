package azurecostreport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExplicitMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period string
		start  string
		end    string
	}{
		{name: "january", period: "202401", start: "2024-01-01", end: "2024-01-31"},
		{name: "leap february", period: "202402", start: "2024-02-01", end: "2024-02-29"},
		{name: "non-leap february", period: "202302", start: "2023-02-01", end: "2023-02-28"},
		{name: "december", period: "202312", start: "2023-12-01", end: "2023-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := resolveTimePeriod(tt.period, "Last30Days", now)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start.Format("2006-01-02"))
			assert.Equal(t, tt.end, end.Format("2006-01-02"))
		})
	}
}

func TestResolveRelativePeriods(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	start, end, err := resolveTimePeriod("", "Last30Days", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-09", start.Format("2006-01-02"))
	assert.Equal(t, now, end)

	start, _, err = resolveTimePeriod("", "Last7Days", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", start.Format("2006-01-02"))

	start, end, err = resolveTimePeriod("", "LastMonth", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, now, end)
}

func TestResolveRejectsBadInput(t *testing.T) {
	_, _, err := resolveTimePeriod("2024-01", "Last30Days", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYYMM")

	_, _, err = resolveTimePeriod("", "Yesterday", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report time period")
}

func TestDownloadReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("report bytes"))
	}))
	defer srv.Close()

	svc := &service{httpClient: srv.Client(), logger: zerolog.Nop()}
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := svc.DownloadReport(context.Background(), srv.URL, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report bytes", string(content))
	assert.Equal(t, ".gz", filepath.Ext(path))
}

func TestDownloadReportNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusForbidden)
	}))
	defer srv.Close()

	svc := &service{httpClient: srv.Client(), logger: zerolog.Nop()}

	_, err := svc.DownloadReport(context.Background(), srv.URL, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report download returned status")
}
