package service

import (
	"context"

	"github.com/guttosm/stockticker/internal/cache"
	"github.com/guttosm/stockticker/internal/domain/models"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/shopspring/decimal"
)

// cachedStockService reads single stock values through a ValueCache and
// invalidates a symbol after every successful write to it. Cache failures
// are logged and the call falls through to the wrapped service.
//
// A computed value is stored under the generation read before the store was
// queried; if a write invalidated the symbol meanwhile the value is dropped.
type cachedStockService struct {
	next  StockService
	cache cache.ValueCache
}

// NewCachedStockService decorates next with a per-symbol value cache.
func NewCachedStockService(next StockService, c cache.ValueCache) StockService {
	return &cachedStockService{next: next, cache: c}
}

func (s *cachedStockService) AddTransaction(ctx context.Context, tx *models.Transaction) bool {
	if !s.next.AddTransaction(ctx, tx) {
		return false
	}
	if err := s.cache.Invalidate(ctx, tx.Symbol); err != nil {
		logger.L().Warn().Str("op", "AddTransaction").Str("symbol", tx.Symbol).Err(err).Msg("cache invalidate failed")
	}
	return true
}

func (s *cachedStockService) GetStockValue(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	v, hit, err := s.cache.Get(ctx, symbol)
	if err != nil {
		logger.L().Warn().Str("op", "GetStockValue").Str("symbol", symbol).Err(err).Msg("cache read failed")
	}
	if hit {
		return v, true
	}

	gen, genErr := s.cache.Generation(ctx, symbol)
	if genErr != nil {
		logger.L().Warn().Str("op", "GetStockValue").Str("symbol", symbol).Err(genErr).Msg("cache generation read failed")
	}

	v, ok := s.next.GetStockValue(ctx, symbol)
	if !ok {
		return v, false
	}
	if genErr != nil {
		return v, true
	}
	stored, err := s.cache.Set(ctx, symbol, gen, v)
	switch {
	case err != nil:
		logger.L().Warn().Str("op", "GetStockValue").Str("symbol", symbol).Err(err).Msg("cache write failed")
	case !stored:
		logger.L().Debug().Str("op", "GetStockValue").Str("symbol", symbol).Msg("value superseded by a write, not cached")
	}
	return v, true
}

func (s *cachedStockService) GetAllStockValues(ctx context.Context) ([]models.StockValue, bool) {
	return s.next.GetAllStockValues(ctx)
}

func (s *cachedStockService) GetStockValues(ctx context.Context, symbols []string) ([]models.StockValue, bool) {
	return s.next.GetStockValues(ctx, symbols)
}
