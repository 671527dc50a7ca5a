package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booking/internal/metrics"
)

type recordingQueue struct {
	mu       sync.Mutex
	calls    int
	failures int
	jobs     []Job
	closed   bool

	// gate, when set, blocks every Enqueue until it is closed.
	started chan struct{}
	gate    chan struct{}
}

func (q *recordingQueue) Enqueue(_ context.Context, job Job) error {
	if q.gate != nil {
		q.started <- struct{}{}
		<-q.gate
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.calls++
	if q.failures > 0 {
		q.failures--
		return errors.New("broker down")
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDispatcher_RetriesThenDelivers(t *testing.T) {
	q := &recordingQueue{failures: 2}
	m := metrics.New(prometheus.NewRegistry())
	d := NewDispatcher(q, quietLogger(), m, 10, WithBackoff(time.Millisecond))

	require.NoError(t, d.Publish(context.Background(), TopicBookingCreated, map[string]string{"id": "b-1"}))
	require.NoError(t, d.Close())

	assert.Equal(t, 3, q.calls)
	require.Len(t, q.jobs, 1)
	assert.Equal(t, TopicBookingCreated, q.jobs[0].Topic)
	assert.Equal(t, 3, q.jobs[0].Attempts)
	assert.True(t, q.jobs[0].RemoveOnComplete)
	assert.JSONEq(t, `{"id":"b-1"}`, string(q.jobs[0].Payload))
	assert.True(t, q.closed)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Notifications.WithLabelValues(TopicBookingCreated, "enqueued")))
}

func TestDispatcher_GivesUpAfterThreeAttempts(t *testing.T) {
	q := &recordingQueue{failures: 10}
	m := metrics.New(prometheus.NewRegistry())
	d := NewDispatcher(q, quietLogger(), m, 10, WithBackoff(time.Millisecond))

	require.NoError(t, d.Publish(context.Background(), TopicBookingCancelled, "x"))
	require.NoError(t, d.Close())

	assert.Equal(t, DefaultAttempts, q.calls)
	assert.Empty(t, q.jobs)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Notifications.WithLabelValues(TopicBookingCancelled, "failed")))
}

func TestDispatcher_DropsWhenBufferFull(t *testing.T) {
	q := &recordingQueue{started: make(chan struct{}, 4), gate: make(chan struct{})}
	d := NewDispatcher(q, quietLogger(), nil, 1)

	ctx := context.Background()
	require.NoError(t, d.Publish(ctx, TopicMailSend, 1))
	<-q.started // worker holds the first job

	require.NoError(t, d.Publish(ctx, TopicMailSend, 2))
	assert.ErrorIs(t, d.Publish(ctx, TopicMailSend, 3), ErrQueueFull)

	close(q.gate)
	require.NoError(t, d.Close())
	assert.Len(t, q.jobs, 2)
}

func TestDispatcher_PublishAfterClose(t *testing.T) {
	d := NewDispatcher(&recordingQueue{}, quietLogger(), nil, 1)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	assert.ErrorIs(t, d.Publish(context.Background(), TopicMailSend, nil), ErrClosed)
}

func TestDispatcher_RejectsUnmarshalablePayload(t *testing.T) {
	d := NewDispatcher(&recordingQueue{}, quietLogger(), nil, 1)
	defer d.Close()

	err := d.Publish(context.Background(), TopicMailSend, make(chan int))
	var jsonErr *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &jsonErr)
}
