package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service"
	"github.com/lulielmo/AzureCostHandling/service/assembler"
	azurecostreport "github.com/lulielmo/AzureCostHandling/service/azure/costreport"
	"github.com/lulielmo/AzureCostHandling/service/config"
	"github.com/lulielmo/AzureCostHandling/service/excel"
	"github.com/lulielmo/AzureCostHandling/service/ingest"
	"github.com/lulielmo/AzureCostHandling/utils"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func NewService(
	cfg config.Config,
	costReportService azurecostreport.CostReportService,
	identityService service.IdentityService,
	ingestService ingest.IngestService,
	assemblerService assembler.AssemblerService,
	excelService excel.ExcelService,
	logger zerolog.Logger,
) *orchestratorService {
	return &orchestratorService{
		cfg:        cfg,
		costReport: costReportService,
		identity:   identityService,
		ingest:     ingestService,
		assembler:  assemblerService,
		excel:      excelService,
		logger:     logger,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	if flags.File != "" {
		return s.processWorkflow(flags.File, flags.Output)
	}
	if flags.Period != "" {
		return s.generateWorkflow(flags.Period, flags.Output)
	}

	fmt.Println("\nChoose an option:")
	fmt.Println("1. Generate a new cost report from Azure")
	fmt.Println("2. Process an existing report file")
	choice := utils.Prompt("Enter your choice (1 or 2): ")

	switch choice {
	case "1":
		period := utils.Prompt("Enter report period (YYYYMM) or leave blank for the default: ")
		if period != "" && !s.confirmPeriod(period) {
			return nil
		}
		return s.generateWorkflow(period, flags.Output)
	case "2":
		path, err := s.pickReportFile()
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		return s.processWorkflow(path, flags.Output)
	default:
		fmt.Println("Invalid choice. Exiting.")
		return nil
	}
}

func (s *orchestratorService) generateWorkflow(period, output string) error {
	if !s.cfg.HasBillingAccount() {
		return fmt.Errorf("AZURE_BILLING_ACCOUNT_ID must be set to generate a report")
	}

	ctx := context.Background()

	if s.identity != nil {
		if account, err := s.identity.GetAccountInfo(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("could not resolve subscription identity")
		} else {
			s.logger.Info().Str("subscription", account.AccountName).Str("id", account.AccountID).Msg("running as")
		}
	}

	utils.StartSpinner("generating cost report")
	url, err := s.costReport.GenerateDetailedReport(ctx, period)
	utils.StopSpinner()
	if err != nil {
		return err
	}

	path, err := s.costReport.DownloadReport(ctx, url, s.cfg.ReportsDir)
	if err != nil {
		return err
	}

	return s.processWorkflow(path, output)
}

func (s *orchestratorService) processWorkflow(path, output string) error {
	if path == "" {
		return fmt.Errorf("either a report reference or a local report file must be supplied")
	}

	table, err := s.ingest.ReadReport(path)
	if err != nil {
		return err
	}

	s.printDiagnostics(table)

	report, enriched := s.assembler.Assemble(table)

	filename, err := s.excel.Export(report, enriched, output)
	if err != nil {
		return err
	}
	s.logger.Info().Str("path", filename).Msg("report exported")

	utils.DrawKonteringTable(report)
	utils.PrintMediusComments(report.Comments)
	return nil
}

func (s *orchestratorService) printDiagnostics(table model.BillingTable) {
	total := decimal.Zero
	for _, line := range table.Lines {
		total = total.Add(line.CostInBillingCurrency)
	}
	s.logger.Info().Str("total", total.StringFixed(2)).Msg("total CostInBillingCurrency")

	breakdowns := []model.CostBreakdown{
		breakdown(table.Lines, "ResourceGroup", func(l model.BillingLine) string { return l.ResourceGroup }),
		breakdown(table.Lines, "MeterCategory", func(l model.BillingLine) string { return l.MeterCategory }),
		breakdown(table.Lines, "SubscriptionName", func(l model.BillingLine) string { return l.SubscriptionName }),
	}
	for _, b := range breakdowns {
		utils.DrawSubtotalTable(b)
	}
	utils.DrawSubtotalChart(breakdowns[1])
}

func breakdown(lines []model.BillingLine, column string, key func(model.BillingLine) string) model.CostBreakdown {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, line := range lines {
		name := key(line)
		if _, ok := sums[name]; !ok {
			order = append(order, name)
		}
		sums[name] = sums[name].Add(line.CostInBillingCurrency)
	}

	b := model.CostBreakdown{Column: column}
	for _, name := range order {
		b.Subtotals = append(b.Subtotals, model.Subtotal{Name: name, Amount: sums[name]})
	}
	return b
}

// confirmPeriod asks for confirmation when the requested period is more
// than 11 months back.
func (s *orchestratorService) confirmPeriod(period string) bool {
	month, err := time.Parse("200601", period)
	if err != nil {
		fmt.Println("Invalid period format. Enter it as 'YYYYMM'.")
		return false
	}

	now := time.Now()
	monthsBack := (now.Year()-month.Year())*12 + int(now.Month()) - int(month.Month())
	if monthsBack <= 11 {
		return true
	}

	answer := utils.Prompt(fmt.Sprintf(
		"You chose the period %s, which is more than 11 months back. Are you sure you want to continue? (y/n): ",
		month.Format("2006-01")))
	if strings.ToLower(answer) != "y" {
		fmt.Println("Aborting at the user's request.")
		return false
	}
	return true
}

func (s *orchestratorService) pickReportFile() (string, error) {
	entries, err := os.ReadDir(s.cfg.ReportsDir)
	if err != nil {
		return "", fmt.Errorf("could not read the %q directory: %w", s.cfg.ReportsDir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".csv.gz") {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		fmt.Printf("No reports found in the %q directory.\n", s.cfg.ReportsDir)
		return "", nil
	}

	fmt.Printf("\nAvailable reports in %q:\n", s.cfg.ReportsDir)
	for i, file := range files {
		fmt.Printf("%d. %s\n", i+1, file)
	}

	choice := utils.Prompt("\nChoose a report to process (enter number): ")
	index, err := strconv.Atoi(choice)
	if err != nil || index < 1 || index > len(files) {
		fmt.Println("Invalid choice. Exiting.")
		return "", nil
	}
	return filepath.Join(s.cfg.ReportsDir, files[index-1]), nil
}
