package main

import (
	"io"
	"os"
	"time"

	"github.com/lulielmo/AzureCostHandling/service"
	"github.com/lulielmo/AzureCostHandling/service/aggregate"
	"github.com/lulielmo/AzureCostHandling/service/assembler"
	azureconfig "github.com/lulielmo/AzureCostHandling/service/azure/config"
	azurecostreport "github.com/lulielmo/AzureCostHandling/service/azure/costreport"
	azureidentity "github.com/lulielmo/AzureCostHandling/service/azure/identity"
	"github.com/lulielmo/AzureCostHandling/service/comments"
	"github.com/lulielmo/AzureCostHandling/service/config"
	"github.com/lulielmo/AzureCostHandling/service/excel"
	flagservice "github.com/lulielmo/AzureCostHandling/service/flag"
	"github.com/lulielmo/AzureCostHandling/service/ingest"
	"github.com/lulielmo/AzureCostHandling/service/kontering"
	"github.com/lulielmo/AzureCostHandling/service/orchestrator"
	"github.com/lulielmo/AzureCostHandling/service/rules"
	"github.com/lulielmo/AzureCostHandling/service/tags"
	"github.com/lulielmo/AzureCostHandling/utils"
	"github.com/rs/zerolog"
)

const logFile = "azure_cost_handling.log"

func main() {
	utils.DrawBanner()

	flagService := flagservice.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	logger := newLogger(flags.Verbose)
	cfg := config.Load()

	ruleService := rules.NewService(cfg.ResourceConfigPath, cfg.GeneralConfigPath, logger)
	tagService := tags.NewService()
	konteringService := kontering.NewService(ruleService, logger)
	aggregateService := aggregate.NewService()
	commentService := comments.NewService(ruleService.General().GodkantAv)
	assemblerService := assembler.NewService(tagService, konteringService, aggregateService, commentService, logger)
	ingestService := ingest.NewService(logger)
	excelService := excel.NewService(cfg.ReportsDir, logger)

	var costReportService azurecostreport.CostReportService
	var identityService service.IdentityService
	if cfg.HasBillingAccount() {
		azureConfigService, err := azureconfig.NewService(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not set up Azure credentials")
		}

		costReportService, err = azurecostreport.NewService(cfg.BillingAccountID, cfg.ReportTimePeriod, azureConfigService.GetCredential(), logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not set up the cost report client")
		}

		if cfg.HasSubscription() {
			identityService, err = azureidentity.NewService(cfg.SubscriptionID, azureConfigService.GetCredential())
			if err != nil {
				logger.Fatal().Err(err).Msg("could not set up the subscription client")
			}
		}
	}

	orchestratorService := orchestrator.NewService(cfg, costReportService, identityService, ingestService, assemblerService, excelService, logger)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
}

// newLogger mirrors the log output to the console and a log file. Verbose
// runs include Azure SDK HTTP traffic at debug level.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}
	if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		writers = append(writers, file)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
}
