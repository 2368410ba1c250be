package models

import "github.com/shopspring/decimal"

// Transaction represents a single recorded trade for a ticker symbol.
//
// Fields:
//   - ID: surrogate key assigned by the store on insert; nil until persisted.
//   - Symbol: ticker symbol (e.g., "XRO"). Required, matched case-sensitively.
//   - Price: traded unit price, stored as an exact decimal.
//   - Shares: number of shares traded. Persisted but not used by aggregations.
//   - BrokerID: identifier of the submitting broker. Required, audit only.
//
// swagger:model Transaction
type Transaction struct {
	ID       *int64          `json:"id,omitempty" example:"1"`
	Symbol   string          `json:"symbol" example:"XRO"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"89.5"`
	Shares   decimal.Decimal `json:"shares" swaggertype:"number" example:"100"`
	BrokerID string          `json:"brokerId" example:"broker-42"`
}
