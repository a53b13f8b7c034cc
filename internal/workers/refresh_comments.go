package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/blog-comments/domain"
)

const (
	refreshQueueSize   = 1024
	refreshBatchSize   = 100
	refreshInterval    = 1 * time.Second
	refreshConcurrency = 8
)

// Refresher reloads one article's comment list into the cache.
type Refresher interface {
	Refresh(ctx context.Context, articleID int64) error
}

type refreshCommentsWorker struct {
	repo     Refresher
	ch       chan int64
	interval time.Duration
}

var _ domain.RefreshWorker = (*refreshCommentsWorker)(nil)

func NewRefreshCommentsWorker(repo Refresher) *refreshCommentsWorker {
	return &refreshCommentsWorker{
		repo:     repo,
		ch:       make(chan int64, refreshQueueSize),
		interval: refreshInterval,
	}
}

// Send never blocks; when the queue is full the article is dropped and its
// cache is rebuilt on the next read instead.
func (w *refreshCommentsWorker) Send(articleID int64) {
	select {
	case w.ch <- articleID:
	default:
		logrus.Info("RefreshCommentsWorker's channel is full, task dropped")
	}
}

// Start blocks until ctx is cancelled, flushing batches of queued articles
// every interval or as soon as a batch is full.
func (w *refreshCommentsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	batch := make(map[int64]struct{}, refreshBatchSize)
	for {
		select {
		case id := <-w.ch:
			batch[id] = struct{}{}
			if len(batch) >= refreshBatchSize {
				w.flush(ctx, batch)
				batch = make(map[int64]struct{}, refreshBatchSize)
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = make(map[int64]struct{}, refreshBatchSize)
			}
		case <-ctx.Done():
			logrus.Info("shutting down RefreshCommentsWorker, flushing remain tasks...")
			w.drain(batch)
			w.flush(context.Background(), batch)
			return
		}
	}
}

func (w *refreshCommentsWorker) drain(batch map[int64]struct{}) {
	for {
		select {
		case id := <-w.ch:
			batch[id] = struct{}{}
		default:
			return
		}
	}
}

func (w *refreshCommentsWorker) flush(ctx context.Context, batch map[int64]struct{}) {
	var g errgroup.Group
	g.SetLimit(refreshConcurrency)
	for id := range batch {
		g.Go(func() error {
			if err := w.repo.Refresh(ctx, id); err != nil {
				logrus.Errorf("failed to refresh comments of article %d: %v", id, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
