package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CatalogSource is the subset of application functionality the refresher
// needs.
type CatalogSource interface {
	RefreshCatalog(ctx context.Context) error
}

// CatalogRefresher keeps the in-memory catalog snapshot current by refetching
// the external catalog store on an interval. The first refresh happens
// immediately on start.
type CatalogRefresher struct {
	source   CatalogSource
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCatalogRefresher constructs the background refresher.
func NewCatalogRefresher(source CatalogSource, interval time.Duration, logger *slog.Logger) *CatalogRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CatalogRefresher{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background refreshing.
func (r *CatalogRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop cancels the refresh loop and waits for it to exit.
func (r *CatalogRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CatalogRefresher) loop(ctx context.Context) {
	defer r.wg.Done()

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// A failed refresh is logged and the previous snapshot stays in place.
func (r *CatalogRefresher) refresh(ctx context.Context) {
	if err := r.source.RefreshCatalog(ctx); err != nil {
		r.logger.Error("catalog refresh failed", slog.String("error", err.Error()))
	}
}
