package storage

import (
	"context"
	"database/sql"

	"github.com/guttosm/stockticker/internal/domain/models"
	pq "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// TransactionsRepository defines contract for DB operations.
type TransactionsRepository interface {
	InsertTransaction(ctx context.Context, tx *models.Transaction) (int64, error)
	InsertTransactionsBatch(ctx context.Context, txs []models.Transaction) error
	AveragePrice(ctx context.Context, symbol string) (decimal.NullDecimal, error)
	AveragePrices(ctx context.Context, symbols []string) ([]models.StockValue, error)
	HasImport(ctx context.Context, filename string) (bool, error)
	RecordImport(ctx context.Context, filename string, rowCount int) error
}

type transactionsRepository struct {
	db *sql.DB
}

func NewTransactionsRepository(db *sql.DB) TransactionsRepository {
	return &transactionsRepository{db: db}
}

// InsertTransaction appends one transaction and returns the id assigned by the database.
func (r *transactionsRepository) InsertTransaction(ctx context.Context, tx *models.Transaction) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stock_transactions (symbol, price, shares, broker_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, tx.Symbol, tx.Price, tx.Shares, tx.BrokerID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertTransactionsBatch inserts multiple transactions into DB in a single transaction.
func (r *transactionsRepository) InsertTransactionsBatch(ctx context.Context, txs []models.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"stock_transactions",
		"symbol",
		"price",
		"shares",
		"broker_id",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range txs {
		if _, err := stmt.ExecContext(ctx, rec.Symbol, rec.Price, rec.Shares, rec.BrokerID); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	// flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// AveragePrice returns the mean price of every transaction for symbol.
// The result is invalid (NULL) when the symbol has no transactions.
func (r *transactionsRepository) AveragePrice(ctx context.Context, symbol string) (decimal.NullDecimal, error) {
	var avg decimal.NullDecimal
	err := r.db.QueryRowContext(ctx,
		`SELECT AVG(price) FROM stock_transactions WHERE symbol = $1`, symbol,
	).Scan(&avg)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return avg, nil
}

// AveragePrices returns the mean price per distinct symbol, ordered by the
// first time each symbol was recorded. A nil symbols slice means every symbol;
// otherwise only symbols present in the slice are returned.
func (r *transactionsRepository) AveragePrices(ctx context.Context, symbols []string) ([]models.StockValue, error) {
	query := `
		SELECT symbol, AVG(price) AS value
		FROM stock_transactions
		GROUP BY symbol
		ORDER BY MIN(id)
	`
	var args []interface{}
	if symbols != nil {
		query = `
		SELECT symbol, AVG(price) AS value
		FROM stock_transactions
		WHERE symbol = ANY($1)
		GROUP BY symbol
		ORDER BY MIN(id)
	`
		args = append(args, pq.Array(symbols))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	values := make([]models.StockValue, 0)
	for rows.Next() {
		var sv models.StockValue
		if err := rows.Scan(&sv.Symbol, &sv.Value); err != nil {
			return nil, err
		}
		values = append(values, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// HasImport checks if a file was already imported.
func (r *transactionsRepository) HasImport(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// RecordImport records (or refreshes) the import log entry of a file.
func (r *transactionsRepository) RecordImport(ctx context.Context, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}
