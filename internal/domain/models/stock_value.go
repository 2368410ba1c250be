package models

import "github.com/shopspring/decimal"

// StockValue is the average traded price of a symbol, computed on demand.
// Value is invalid (JSON null) when no average could be computed.
//
// swagger:model StockValue
type StockValue struct {
	Symbol string              `json:"symbol" example:"XRO"`
	Value  decimal.NullDecimal `json:"value" swaggertype:"number" example:"30.0"`
}

// NewStockValue builds a StockValue holding a present average.
func NewStockValue(symbol string, value decimal.Decimal) StockValue {
	return StockValue{Symbol: symbol, Value: decimal.NewNullDecimal(value)}
}
