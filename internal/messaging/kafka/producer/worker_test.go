package producer

import (
	"context"
	"errors"
	"testing"

	"go-ats/internal/messaging/kafka"
	kafkaMock "go-ats/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	messages []kafkago.Message
	failOn   map[string]error
	err      error
	calls    int
}

// WriteMessages fails keys listed in failOn individually, the way kafka-go
// reports a partially written batch.
func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	var errs kafkago.WriteErrors
	for i, m := range msgs {
		if err, ok := w.failOn[string(m.Key)]; ok {
			if errs == nil {
				errs = make(kafkago.WriteErrors, len(msgs))
			}
			errs[i] = err
			continue
		}
		w.messages = append(w.messages, m)
	}
	if errs != nil {
		return errs
	}
	return nil
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublishBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes in one write and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		claimed := []kafka.OutboxEvent{
			{ID: "ob-1", RequestID: "req-1", AggregateType: "offer_letter", AggregateID: "offer-1", EventType: "offer_letter.sent", Topic: "ats.offer_letter.sent.v1", Payload: []byte(`{}`)},
			{ID: "ob-2", AggregateType: "interview", AggregateID: "iv-1", EventType: "interview.scheduled", Topic: "ats.interview.scheduled.v1", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ClaimBatch(ctx, batchSize, claimLease).Return(claimed, nil)
		repo.EXPECT().MarkSent(ctx, "ob-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "ob-2").Return(nil)

		n, err := publishBatch(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, writer.calls)
		require.Len(t, writer.messages, 2)

		first := writer.messages[0]
		assert.Equal(t, "ats.offer_letter.sent.v1", first.Topic)
		assert.Equal(t, []byte("offer-1"), first.Key)
		assert.Equal(t, "offer_letter.sent", header(first, "event_type"))
		assert.Equal(t, "req-1", header(first, "request_id"))
		assert.Equal(t, "", header(writer.messages[1], "request_id"))
	})

	t.Run("partial write marks only the failed message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{failOn: map[string]error{"cand-1": errors.New("leader not available")}}

		repo.EXPECT().ClaimBatch(ctx, batchSize, claimLease).Return([]kafka.OutboxEvent{
			{ID: "ob-1", AggregateID: "cand-1", Topic: "ats.candidate.rejected.v1", Payload: []byte(`{}`)},
			{ID: "ob-2", AggregateID: "cand-2", Topic: "ats.candidate.rejected.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "ob-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "ob-2").Return(nil)

		_, err := publishBatch(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, writer.messages, 1)
	})

	t.Run("broker error fails the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{err: errors.New("dial tcp: connection refused")}

		repo.EXPECT().ClaimBatch(ctx, batchSize, claimLease).Return([]kafka.OutboxEvent{
			{ID: "ob-1", AggregateID: "iv-1", Topic: "ats.interview.scheduled.v1", Payload: []byte(`{}`), RetryCount: kafka.MaxPublishAttempts - 1},
			{ID: "ob-2", AggregateID: "iv-2", Topic: "ats.interview.scheduled.v1", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "ob-1", "dial tcp: connection refused").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "ob-2", "dial tcp: connection refused").Return(nil)

		n, err := publishBatch(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("empty claim skips the writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}
		repo.EXPECT().ClaimBatch(ctx, batchSize, claimLease).Return(nil, nil)

		n, err := publishBatch(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, writer.calls)
	})

	t.Run("claim error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ClaimBatch(ctx, batchSize, claimLease).Return(nil, errors.New("db down"))

		_, err := publishBatch(ctx, repo, &recordingWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestWriteResults(t *testing.T) {
	assert.Equal(t, []error{nil, nil}, writeResults(nil, 2))

	boom := errors.New("boom")
	assert.Equal(t, []error{boom, boom}, writeResults(boom, 2))

	partial := kafkago.WriteErrors{nil, boom}
	assert.Equal(t, []error{nil, boom}, writeResults(partial, 2))

	// a length mismatch cannot be attributed per message
	assert.Equal(t, []error{partial, partial, partial}, writeResults(partial, 3))
}
