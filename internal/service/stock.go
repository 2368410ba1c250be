package service

import (
	"context"

	"github.com/guttosm/stockticker/internal/domain/models"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/guttosm/stockticker/internal/storage"
	"github.com/shopspring/decimal"
)

// StockService records transactions and computes average stock values.
//
// Every method is fail-soft: store errors are logged and reported as
// false / not-ok, never returned to the caller.
type StockService interface {
	AddTransaction(ctx context.Context, tx *models.Transaction) bool
	GetStockValue(ctx context.Context, symbol string) (decimal.Decimal, bool)
	GetAllStockValues(ctx context.Context) ([]models.StockValue, bool)
	GetStockValues(ctx context.Context, symbols []string) ([]models.StockValue, bool)
}

type stockService struct {
	repo storage.TransactionsRepository
}

func NewStockService(repo storage.TransactionsRepository) StockService {
	return &stockService{repo: repo}
}

// AddTransaction persists tx and sets its ID. It reports whether a row was written.
func (s *stockService) AddTransaction(ctx context.Context, tx *models.Transaction) bool {
	id, err := s.repo.InsertTransaction(ctx, tx)
	if err != nil {
		logger.L().Error().Str("op", "AddTransaction").Str("symbol", tx.Symbol).Err(err).Msg("add transaction failed")
		return false
	}
	tx.ID = &id
	return true
}

// GetStockValue returns the average price of symbol. ok is false when the
// symbol has no transactions or the store failed.
func (s *stockService) GetStockValue(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	avg, err := s.repo.AveragePrice(ctx, symbol)
	if err != nil {
		logger.L().Error().Str("op", "GetStockValue").Str("symbol", symbol).Err(err).Msg("get stock value failed")
		return decimal.Decimal{}, false
	}
	if !avg.Valid {
		// AVG over zero rows
		logger.L().Error().Str("op", "GetStockValue").Str("symbol", symbol).Msg("get stock value failed: no transactions")
		return decimal.Decimal{}, false
	}
	return avg.Decimal, true
}

// GetAllStockValues returns the average price of every symbol in first-seen order.
func (s *stockService) GetAllStockValues(ctx context.Context) ([]models.StockValue, bool) {
	values, err := s.repo.AveragePrices(ctx, nil)
	if err != nil {
		logger.L().Error().Str("op", "GetAllStockValues").Err(err).Msg("get all stock values failed")
		return nil, false
	}
	return values, true
}

// GetStockValues returns the average price of the stored symbols listed in
// symbols, in first-seen store order.
func (s *stockService) GetStockValues(ctx context.Context, symbols []string) ([]models.StockValue, bool) {
	if len(symbols) == 0 {
		return []models.StockValue{}, true
	}
	values, err := s.repo.AveragePrices(ctx, symbols)
	if err != nil {
		logger.L().Error().Str("op", "GetStockValues").Strs("symbols", symbols).Err(err).Msg("get stock values failed")
		return nil, false
	}
	return values, true
}
