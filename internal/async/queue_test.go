package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingRunner struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (r *countingRunner) Run(_ context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, jobID)
	return jobID, nil
}

func (r *countingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestWorkerQueueRunsAllJobs(t *testing.T) {
	runner := &countingRunner{}
	q := NewWorkerQueue(runner, 3, 16, nil)

	const n = 10
	for i := 0; i < n; i++ {
		if err := q.Enqueue(context.Background(), Job{JobID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := runner.count(); got != n {
		t.Fatalf("ran %d jobs, want %d", got, n)
	}
}

func TestWorkerQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewWorkerQueue(&countingRunner{}, 1, 1, nil)
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	if err != ErrQueueClosed {
		t.Fatalf("Enqueue after shutdown = %v, want ErrQueueClosed", err)
	}
}

func TestWorkerQueueShutdownIdempotent(t *testing.T) {
	q := NewWorkerQueue(&countingRunner{}, 2, 0, nil)
	q.Shutdown(context.Background())
	q.Shutdown(context.Background()) // must not panic
}

func TestWorkerQueueEnqueueSetsSubmittedAt(t *testing.T) {
	runner := &countingRunner{}
	q := NewWorkerQueue(runner, 1, 4, nil)
	defer q.Shutdown(context.Background())

	job := Job{JobID: uuid.New()}
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	// SubmittedAt is stamped on the copy placed in the channel; the zero
	// value on the caller's copy stays untouched.
	if !job.SubmittedAt.IsZero() {
		t.Fatal("caller's copy should not be mutated")
	}
}
