package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booking/internal/metrics"
)

var (
	ErrQueueFull = errors.New("notification buffer full")
	ErrClosed    = errors.New("dispatcher closed")
)

const enqueueTimeout = 5 * time.Second

// Dispatcher feeds jobs to a Queue from a single background worker. Publish
// never blocks: when the buffer is full the job is dropped.
type Dispatcher struct {
	queue   Queue
	log     logrus.FieldLogger
	metrics *metrics.Metrics
	backoff time.Duration

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type Option func(*Dispatcher)

// WithBackoff sets the base delay; attempt n waits n*base before retrying.
func WithBackoff(base time.Duration) Option {
	return func(d *Dispatcher) { d.backoff = base }
}

func NewDispatcher(
	queue Queue,
	log logrus.FieldLogger,
	m *metrics.Metrics,
	buffer int,
	opts ...Option,
) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}

	d := &Dispatcher{
		queue:   queue,
		log:     log,
		metrics: m,
		backoff: 500 * time.Millisecond,
		jobs:    make(chan Job, buffer),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job Job) {
	entry := d.log.WithFields(logrus.Fields{
		"job_id": job.ID,
		"topic":  job.Topic,
	})

	attempts := job.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
		err = d.queue.Enqueue(ctx, job)
		cancel()

		if err == nil {
			d.metrics.Notification(job.Topic, "enqueued")
			return
		}

		entry.WithError(err).WithField("attempt", attempt).Warn("enqueue failed")
		if attempt < attempts {
			time.Sleep(time.Duration(attempt) * d.backoff)
		}
	}

	entry.WithError(err).Error("notification dropped after retries")
	d.metrics.Notification(job.Topic, "failed")
}

// Publish wraps payload in a Job and buffers it for the worker.
func (d *Dispatcher) Publish(_ context.Context, topic string, payload any) error {
	job, err := NewJob(topic, payload)
	if err != nil {
		return err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	select {
	case d.jobs <- job:
		return nil
	default:
		d.metrics.Notification(topic, "dropped")
		d.log.WithField("topic", topic).Warn("notification buffer full, dropping job")
		return ErrQueueFull
	}
}

// Close drains buffered jobs, then closes the queue.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
	return d.queue.Close()
}
