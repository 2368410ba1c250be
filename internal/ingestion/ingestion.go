package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockticker/internal/cache"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/guttosm/stockticker/internal/storage"
)

const (
	fileSuffix       = ".csv"
	defaultBatchSize = 5000
	maxParallelFiles = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.TransactionsRepository {
	return storage.NewTransactionsRepository(db)
}

// ProcessDirectory imports every *.csv transaction file found in dir.
//
//   - dir:      directory containing the input files.
//   - db:       open *sql.DB (PostgreSQL).
//   - parallel: files processed concurrently; 0 means min(NumCPU, 8).
//   - vc:       optional value cache; symbols written by a file are invalidated. May be nil.
//
// Files already listed in the import log are skipped. If any file returns an
// error, the rest are cancelled and that error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, vc cache.ValueCache) error {
	repo := repoCtor(db)

	files, err := listInputFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileSuffix, dir)
	}

	maxParallel := parallelism(parallel)
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("import start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx, f := i, file

		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)
			log := logger.L().With().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Logger()

			done, err := repo.HasImport(gctx, base)
			if err != nil {
				log.Error().Err(err).Msg("check import log failed")
				return fmt.Errorf("file %s: check import log: %w", f, err)
			}
			if done {
				log.Info().Bool("skipped", true).Msg("already imported")
				return nil
			}

			res, err := parseAndPersistFile(gctx, f, repo, defaultBatchSize)
			if err != nil {
				log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				invalidate(gctx, vc, res.symbols)
				return fmt.Errorf("file %s: %w", f, err)
			}
			invalidate(gctx, vc, res.symbols)

			if err := repo.RecordImport(gctx, base, res.rows); err != nil {
				log.Error().Err(err).Msg("update import log failed")
				return fmt.Errorf("file %s: record import: %w", f, err)
			}
			log.Info().Int("rows", res.rows).Int("symbols", len(res.symbols)).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

// listInputFiles returns the *.csv files in dir sorted by name.
func listInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

func parallelism(requested int) int {
	if requested > 0 {
		if requested > maxParallelFiles {
			return maxParallelFiles
		}
		return requested
	}
	if c := runtime.NumCPU(); c < maxParallelFiles {
		return c
	}
	return maxParallelFiles
}

// invalidate drops cached values for symbols; failures are logged only.
func invalidate(ctx context.Context, vc cache.ValueCache, symbols []string) {
	if vc == nil || len(symbols) == 0 {
		return
	}
	if err := vc.Invalidate(context.WithoutCancel(ctx), symbols...); err != nil {
		logger.L().Warn().Strs("symbols", symbols).Err(err).Msg("cache invalidate failed")
	}
}
