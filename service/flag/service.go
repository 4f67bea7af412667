package flag

import (
	"flag"

	"github.com/lulielmo/AzureCostHandling/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	verbose := flag.Bool("v", false, "Enable verbose logging, including Azure SDK HTTP traffic")
	file := flag.String("file", "", "Process an existing report file instead of showing the menu")
	period := flag.String("period", "", "Report period in YYYYMM form")
	output := flag.String("output", "", "Path of the exported workbook")

	flag.Parse()

	return model.Flags{
		Verbose: *verbose,
		File:    *file,
		Period:  *period,
		Output:  *output,
	}, nil
}
