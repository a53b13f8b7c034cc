package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingRefresher struct {
	mu    sync.Mutex
	calls map[int64]int
	err   error
}

func (r *recordingRefresher) Refresh(_ context.Context, articleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[int64]int)
	}
	r.calls[articleID]++
	return r.err
}

func (r *recordingRefresher) snapshot() map[int64]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]int, len(r.calls))
	for k, v := range r.calls {
		out[k] = v
	}
	return out
}

func TestRefreshWorkerCollapsesDuplicates(t *testing.T) {
	rec := &recordingRefresher{}
	w := NewRefreshCommentsWorker(rec)
	w.interval = time.Hour

	for _, id := range []int64{1, 2, 1, 1, 3} {
		w.Send(id)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	assert.Equal(t, map[int64]int{1: 1, 2: 1, 3: 1}, rec.snapshot())
}

func TestRefreshWorkerFlushesOnTick(t *testing.T) {
	rec := &recordingRefresher{}
	w := NewRefreshCommentsWorker(rec)
	w.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	w.Send(4)
	assert.Eventually(t, func() bool { return rec.snapshot()[4] == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRefreshWorkerFlushesOnShutdown(t *testing.T) {
	rec := &recordingRefresher{err: errors.New("db down")}
	w := NewRefreshCommentsWorker(rec)
	w.interval = time.Hour

	w.Send(7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	assert.Equal(t, map[int64]int{7: 1}, rec.snapshot())
}

func TestRefreshWorkerSendDropsWhenFull(t *testing.T) {
	w := NewRefreshCommentsWorker(&recordingRefresher{})
	for i := 0; i < refreshQueueSize+10; i++ {
		w.Send(int64(i))
	}
	assert.Len(t, w.ch, refreshQueueSize)
}
