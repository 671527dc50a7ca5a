package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Queue hands a job to the broker. Implementations must be safe for use by a
// single worker goroutine; Enqueue is never called concurrently.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Close() error
}

// LogQueue writes jobs to the log. Used when no broker is configured.
type LogQueue struct {
	log logrus.FieldLogger
}

func NewLogQueue(log logrus.FieldLogger) *LogQueue {
	return &LogQueue{log: log}
}

func (q *LogQueue) Enqueue(_ context.Context, job Job) error {
	q.log.WithFields(logrus.Fields{
		"job_id":  job.ID,
		"topic":   job.Topic,
		"payload": string(job.Payload),
	}).Info("notification job")
	return nil
}

func (q *LogQueue) Close() error { return nil }
