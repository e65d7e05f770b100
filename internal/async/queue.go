package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (retry, trace, etc).
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner executes one queued job.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error)
}

var ErrQueueClosed = errors.New("queue is shut down")

// WorkerQueue is an in-process queue backed by a fixed worker pool. Jobs are
// dropped on the floor only when Enqueue's context is cancelled first; a full
// channel blocks the caller instead.
type WorkerQueue struct {
	jobs   chan Job
	runner Runner
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewWorkerQueue(runner Runner, workers, buffer int, logger *slog.Logger) *WorkerQueue {
	if workers < 1 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		jobs:   make(chan Job, buffer),
		runner: runner,
		logger: logger,
	}
	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.worker(i)
	}
	return q
}

func (q *WorkerQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		started := time.Now()
		_, err := q.runner.Run(context.Background(), job.JobID)
		if err != nil {
			q.logger.Error("job failed", "worker", id, "job_id", job.JobID, "trace_id", job.TraceID, "error", err)
			continue
		}
		q.logger.Info("job done", "worker", id, "job_id", job.JobID, "elapsed", time.Since(started))
	}
}

func (q *WorkerQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	// The lock is held across the send so Shutdown cannot close the channel
	// under a blocked sender.
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, bounded by ctx.
func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("shutdown timed out with jobs in flight")
	}
}
