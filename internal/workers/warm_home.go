package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oakheim/blog-comments/domain"
)

// warmHomeWorker periodically rebuilds the home listing cache so the
// first request after a TTL expiry never pays the database round-trip.
type warmHomeWorker struct {
	postRepo domain.PostDBRepository
	cache    domain.PostCache
	interval time.Duration
}

func NewWarmHomeWorker(postRepo domain.PostDBRepository, cache domain.PostCache, interval time.Duration) *warmHomeWorker {
	return &warmHomeWorker{
		postRepo: postRepo,
		cache:    cache,
		interval: interval,
	}
}

func (w *warmHomeWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.warm(ctx)
	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down warmHomeWorker")
			return
		}
	}
}

func (w *warmHomeWorker) warm(ctx context.Context) {
	posts, err := w.postRepo.Fetch(ctx)
	if err != nil {
		logrus.Errorf("failed to fetch posts for home cache: %v", err)
		return
	}

	if err := w.cache.SetHome(ctx, posts); err != nil {
		logrus.Errorf("failed to warm home cache: %v", err)
	}
}
