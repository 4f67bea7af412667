package ingest

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lulielmo/AzureCostHandling/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func NewService(logger zerolog.Logger) *service {
	return &service{logger: logger}
}

// ReadReport implements IngestService. Gzip compression is detected from
// the magic bytes rather than the filename, since downloaded reports are
// sometimes renamed.
func (s *service) ReadReport(path string) (model.BillingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.BillingTable{}, fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	buffered := bufio.NewReader(f)
	var source io.Reader = buffered
	if magic, err := buffered.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		s.logger.Info().Str("path", path).Msg("report file is gzip compressed")
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return model.BillingTable{}, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		source = gz
	}

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return model.BillingTable{}, fmt.Errorf("failed to read report header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, required := range []string{colResourceID, colCost} {
		if _, ok := index[required]; !ok {
			s.logger.Warn().Str("column", required).Msg("report is missing an expected column")
		}
	}

	table := model.BillingTable{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.BillingTable{}, fmt.Errorf("failed to read report row: %w", err)
		}
		table.Lines = append(table.Lines, s.toLine(record, index))
	}

	s.logger.Info().Int("rows", len(table.Lines)).Str("path", path).Msg("report ingested")
	return table, nil
}

func (s *service) toLine(record []string, index map[string]int) model.BillingLine {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	cost := decimal.Zero
	if raw := field(colCost); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			s.logger.Warn().Str("value", raw).Msg("could not parse cost value, treating as zero")
		} else {
			cost = parsed
		}
	}

	return model.BillingLine{
		ResourceID:             field(colResourceID),
		CostInBillingCurrency:  cost,
		MeterCategory:          field(colMeterCategory),
		MeterSubCategory:       field(colMeterSubCategory),
		MeterName:              field(colMeterName),
		ResourceGroup:          field(colResourceGroup),
		SubscriptionName:       field(colSubscriptionName),
		TagsRaw:                field(colTags),
		BillingPeriodStartDate: field(colBillingPeriodStartDate),
		BillingPeriodEndDate:   field(colBillingPeriodEndDate),
		Raw:                    record,
	}
}
