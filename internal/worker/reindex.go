package worker

import (
	"context"
	"time"

	"github.com/Beka01247/bites/internal/service"
	"go.uber.org/zap"
)

// ReindexWorker periodically reconciles the full-text search index. The
// rebuild is idempotent, so running it on a timer is safe even when nothing
// changed.
type ReindexWorker struct {
	searchService *service.SearchService
	interval      time.Duration
	logger        *zap.SugaredLogger
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
}

func NewReindexWorker(
	searchService *service.SearchService,
	interval time.Duration,
	logger *zap.SugaredLogger,
) *ReindexWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &ReindexWorker{
		searchService: searchService,
		interval:      interval,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
}

func (w *ReindexWorker) Start() error {
	w.logger.Info("starting reindex worker")

	go w.run()

	return nil
}

func (w *ReindexWorker) Stop() {
	w.logger.Info("stopping reindex worker")
	w.cancel()
	<-w.done
}

func (w *ReindexWorker) run() {
	defer close(w.done)

	// build the index up front so search works before the first tick
	if err := w.searchService.Rebuild(w.ctx); err != nil {
		w.logger.Errorw("initial search index build failed", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if err := w.searchService.Rebuild(w.ctx); err != nil {
				w.logger.Errorw("failed to rebuild search index", "error", err)
			}
		}
	}
}
