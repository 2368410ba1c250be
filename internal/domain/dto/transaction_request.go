package dto

import (
	"github.com/guttosm/stockticker/internal/domain/models"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest is the JSON body accepted by
// POST /api/StockTicker/AddTransaction.
//
// Symbol and BrokerID are required; Price and Shares are accepted as given.
type AddTransactionRequest struct {
	Symbol   string          `json:"symbol" example:"XRO"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"89.5"`
	Shares   decimal.Decimal `json:"shares" swaggertype:"number" example:"100"`
	BrokerID string          `json:"brokerId" example:"broker-42"`
}

// Validate reports the first missing required field, or "" if the request is complete.
func (r AddTransactionRequest) Validate() string {
	if r.Symbol == "" {
		return "symbol is required"
	}
	if r.BrokerID == "" {
		return "brokerId is required"
	}
	return ""
}

// ToModel converts the request into a not-yet-persisted Transaction.
func (r AddTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		Symbol:   r.Symbol,
		Price:    r.Price,
		Shares:   r.Shares,
		BrokerID: r.BrokerID,
	}
}
