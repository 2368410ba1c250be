package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/stockticker/internal/domain/dto"
	"github.com/guttosm/stockticker/internal/domain/models"
	"github.com/guttosm/stockticker/internal/storage"
	"github.com/shopspring/decimal"
)

// expectedHeaders enforces strict column ordering for transaction files.
var expectedHeaders = []string{
	"symbol",
	"price",
	"shares",
	"broker_id",
}

// fileResult summarizes one persisted file.
type fileResult struct {
	rows    int
	symbols []string // distinct, in first-seen order
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - a row missing symbol or broker_id, or with an unparsable decimal
//   - unrecoverable I/O or store errors
//
// Rows flushed before a failure stay in the store; the file is not recorded
// in the import log, so a later run retries it.
func parseAndPersistFile(ctx context.Context, path string, repo storage.TransactionsRepository, batch int) (fileResult, error) {
	var res fileResult

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return res, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if h != expectedHeaders[i] {
			return res, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	buf := make([]models.Transaction, 0, batch)
	seen := make(map[string]struct{})
	lineNumber := 1

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertTransactionsBatch(ctx, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return res, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		tx, err := recordToTransaction(rec)
		if err != nil {
			return res, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if _, ok := seen[tx.Symbol]; !ok {
			seen[tx.Symbol] = struct{}{}
			res.symbols = append(res.symbols, tx.Symbol)
		}
		buf = append(buf, tx)
		res.rows++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return res, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return res, fmt.Errorf("final flush: %w", err)
	}

	return res, nil
}

// recordToTransaction converts one CSV record (length already checked) into a
// Transaction, applying the same required-field rules as the HTTP API.
//
//	0 symbol     → Symbol (case preserved)
//	1 price      → Price (decimal, required)
//	2 shares     → Shares (decimal, empty→0)
//	3 broker_id  → BrokerID
func recordToTransaction(rec []string) (models.Transaction, error) {
	req := dto.AddTransactionRequest{
		Symbol:   strings.TrimSpace(rec[0]),
		BrokerID: strings.TrimSpace(rec[3]),
	}
	if msg := req.Validate(); msg != "" {
		return models.Transaction{}, errors.New(msg)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(rec[1]))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid price: %w", err)
	}
	req.Price = price

	if s := strings.TrimSpace(rec[2]); s != "" {
		shares, err := decimal.NewFromString(s)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid shares: %w", err)
		}
		req.Shares = shares
	}

	return *req.ToModel(), nil
}
