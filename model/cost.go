package model

import "github.com/shopspring/decimal"

// Subtotal is one entry of a per-column cost breakdown.
type Subtotal struct {
	Name   string
	Amount decimal.Decimal
}

// CostBreakdown groups the report's total cost by one column, for the
// console diagnostics printed after ingestion.
type CostBreakdown struct {
	Column    string
	Subtotals []Subtotal
}
