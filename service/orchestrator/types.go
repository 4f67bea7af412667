package orchestrator

import (
	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/lulielmo/AzureCostHandling/service"
	"github.com/lulielmo/AzureCostHandling/service/assembler"
	azurecostreport "github.com/lulielmo/AzureCostHandling/service/azure/costreport"
	"github.com/lulielmo/AzureCostHandling/service/config"
	"github.com/lulielmo/AzureCostHandling/service/excel"
	"github.com/lulielmo/AzureCostHandling/service/ingest"
	"github.com/rs/zerolog"
)

type orchestratorService struct {
	cfg        config.Config
	costReport azurecostreport.CostReportService
	identity   service.IdentityService
	ingest     ingest.IngestService
	assembler  assembler.AssemblerService
	excel      excel.ExcelService
	logger     zerolog.Logger
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
