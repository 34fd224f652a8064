package worker

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/baharkarakas/airdrop-scanner/internal/metrics"
)

// Pool runs batches of tasks on at most size goroutines per batch.
// size <= 0 starts one goroutine per task.
type Pool struct {
	size int
}

func NewPool(n int) *Pool { return &Pool{size: n} }

func (p *Pool) Size() int { return p.size }

// Run calls fn(0) .. fn(n-1) and returns once every call has finished.
// Tasks are picked up in index order. A panic in any task is re-raised here
// after the rest of the batch settles.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	cp := pool.New()
	if p.size > 0 {
		cp = cp.WithMaxGoroutines(p.size)
	}
	metrics.WorkerQueueDepth.Add(float64(n))
	for i := 0; i < n; i++ {
		cp.Go(func() {
			defer metrics.WorkerQueueDepth.Dec()
			fn(i)
		})
	}
	cp.Wait()
}
