package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"photo-dashboard/pkg/logger"
)

var (
	ErrWorkerStopped = errors.New("dataset worker is not running")
	ErrQueueFull     = errors.New("dataset queue is full")
	ErrCircuitOpen   = errors.New("photo backend failing repeatedly, ingestion paused")
)

// RunFunc executes one queued job to completion
type RunFunc func(ctx context.Context, jobID uuid.UUID) error

// FailFunc settles a job that the worker refused to run
type FailFunc func(ctx context.Context, jobID uuid.UUID, err error)

// DatasetWorker runs queued ingestion jobs with bounded concurrency
type DatasetWorker struct {
	queue chan uuid.UUID
	run   RunFunc
	fail  FailFunc

	// Worker control
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex

	maxConcurrent int

	circuitBreaker *CircuitBreaker
}

// CircuitBreaker stops feeding the backend after consecutive failures
type CircuitBreaker struct {
	failures     int32
	threshold    int32
	resetTimeout time.Duration
	lastFailure  time.Time
	mu           sync.RWMutex
}

func NewCircuitBreaker(threshold int32, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold:    threshold,
		resetTimeout: resetTimeout,
	}
}

// IsOpen returns true while the failure threshold is reached and the reset timeout has not passed
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if atomic.LoadInt32(&cb.failures) >= cb.threshold {
		return time.Since(cb.lastFailure) <= cb.resetTimeout
	}
	return false
}

func (cb *CircuitBreaker) RecordSuccess() {
	atomic.StoreInt32(&cb.failures, 0)
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	atomic.AddInt32(&cb.failures, 1)
	cb.lastFailure = time.Now()
}

func (cb *CircuitBreaker) GetFailures() int32 {
	return atomic.LoadInt32(&cb.failures)
}

func NewDatasetWorker(queueSize, maxConcurrent int) *DatasetWorker {
	if queueSize <= 0 {
		queueSize = 16
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &DatasetWorker{
		queue:          make(chan uuid.UUID, queueSize),
		maxConcurrent:  maxConcurrent,
		circuitBreaker: NewCircuitBreaker(5, 60*time.Second),
	}
}

// Start launches the consumers
func (w *DatasetWorker) Start(run RunFunc, fail FailFunc) {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.run = run
	w.fail = fail
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.mu.Unlock()

	for i := 0; i < w.maxConcurrent; i++ {
		w.wg.Add(1)
		go w.loop()
	}

	logger.Dataset("worker_start", "Dataset worker started", map[string]interface{}{
		"concurrency": w.maxConcurrent,
	})
}

// Stop cancels in-flight jobs, waits for consumers to exit and fails whatever is still queued
func (w *DatasetWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = false
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	drained := w.drain()

	logger.Dataset("worker_stop", "Dataset worker stopped", map[string]interface{}{
		"drained": drained,
	})
}

func (w *DatasetWorker) drain() int {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	drained := 0
	for {
		select {
		case jobID := <-w.queue:
			drained++
			if w.fail != nil {
				w.fail(ctx, jobID, ErrWorkerStopped)
			}
		default:
			return drained
		}
	}
}

func (w *DatasetWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Enqueue implements services.JobQueue
func (w *DatasetWorker) Enqueue(jobID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return ErrWorkerStopped
	}
	select {
	case w.queue <- jobID:
		return nil
	default:
		return ErrQueueFull
	}
}

func (w *DatasetWorker) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case jobID := <-w.queue:
			w.process(jobID)
		}
	}
}

func (w *DatasetWorker) process(jobID uuid.UUID) {
	if w.circuitBreaker.IsOpen() {
		logger.Warn(logger.CategoryDataset, "circuit_open", "Skipping dataset job", map[string]interface{}{
			"job_id":   jobID.String(),
			"failures": w.circuitBreaker.GetFailures(),
		})
		if w.fail != nil {
			w.fail(w.ctx, jobID, ErrCircuitOpen)
		}
		return
	}

	if err := w.run(w.ctx, jobID); err != nil {
		w.circuitBreaker.RecordFailure()
		return
	}
	w.circuitBreaker.RecordSuccess()
}
