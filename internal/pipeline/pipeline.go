// Package pipeline runs one fetch, parse, extract and write pass over the stats page.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/hltv-players/internal/config"
	"github.com/pfrederiksen/hltv-players/internal/logger"
	"github.com/pfrederiksen/hltv-players/internal/scraper"
	"github.com/pfrederiksen/hltv-players/internal/storage"
)

// Result summarizes a completed run.
type Result struct {
	Endpoint    string          `json:"endpoint"`
	Output      string          `json:"output"`
	StatusCode  int             `json:"status_code"`
	Rows        int             `json:"rows"`
	DroppedRows int             `json:"dropped_rows"`
	FetchedAt   time.Time       `json:"fetched_at"`
	Metrics     logger.Snapshot `json:"metrics"`
}

// Run executes the pipeline for cfg. The output file is only opened after every row
// has been extracted, so a failed fetch or missing table leaves it untouched.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	metrics := logger.NewMetrics()
	sc := scraper.New(cfg)
	store := storage.New(cfg.OutputPath)

	log.Info("Fetching stats page", logger.Fields{"endpoint": cfg.Endpoint})

	start := time.Now()
	page, err := sc.Fetch(ctx)
	metrics.Since("fetch", start)
	if err != nil {
		log.Error("Fetch failed", logger.Fields{"endpoint": cfg.Endpoint}, err)
		return nil, err
	}
	fetchedAt := time.Now().UTC()

	fields := logger.Fields{"status_code": page.StatusCode, "bytes": len(page.Body)}
	if page.OK() {
		log.Debug("Fetched stats page", fields)
	} else {
		// The body is still parsed; a block page simply has no stats table.
		log.Warn("Non-success HTTP status", fields)
	}

	start = time.Now()
	extraction, err := sc.Rows(page.Body)
	metrics.Since("parse", start)
	if err != nil {
		log.Error("Parse failed", logger.Fields{"table_class": cfg.TableClass, "status_code": page.StatusCode}, err)
		return nil, err
	}
	metrics.AddCounter("rows.extracted", int64(len(extraction.Rows)))
	metrics.AddCounter("rows.dropped", int64(extraction.Dropped))

	log.Debug("Extracted rows", logger.Fields{
		"rows":    len(extraction.Rows),
		"dropped": extraction.Dropped,
	})

	start = time.Now()
	err = store.WriteRows(extraction.Rows)
	metrics.Since("write", start)
	if err != nil {
		log.Error("Write failed", logger.Fields{"output": store.Path()}, err)
		return nil, err
	}

	log.Info("Saved", logger.Fields{"output": store.Path(), "rows": len(extraction.Rows)})

	return &Result{
		Endpoint:    cfg.Endpoint,
		Output:      store.Path(),
		StatusCode:  page.StatusCode,
		Rows:        len(extraction.Rows),
		DroppedRows: extraction.Dropped,
		FetchedAt:   fetchedAt,
		Metrics:     metrics.Snapshot(),
	}, nil
}
