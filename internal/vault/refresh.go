package vault

import (
	"context"
	"sync"
	"time"
)

// RefreshJob periodically reloads the vault store so that a long-running
// client converges on changes made from other sessions. The job is idle
// until Start is called.
type RefreshJob struct {
	store *VaultStore

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob over the given store.
func NewRefreshJob(store *VaultStore) *RefreshJob {
	return &RefreshJob{store: store}
}

// Start stops any previously running job, then launches a background
// goroutine that reloads the store every interval. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.store.load(jobCtx, false)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
