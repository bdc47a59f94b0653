package producer

import (
	"context"
	"errors"
	"time"

	"go-ats/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	batchSize = 50
	// claimLease must outlast one batch write, or another replica may
	// publish the same rows.
	claimLease = 30 * time.Second
)

// ProcessOutboxEvents drains the outbox every pollInterval until ctx ends.
// A full batch is followed immediately by another claim instead of waiting
// for the next tick.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox publisher started",
		zap.Duration("poll_interval", pollInterval),
		zap.Int("batch_size", batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox publisher stopped")
			return
		case <-ticker.C:
			for {
				n, err := publishBatch(ctx, repo, writer, log)
				if err != nil {
					log.Error("publish outbox batch failed", zap.Error(err))
				}
				if err != nil || n < batchSize || ctx.Err() != nil {
					break
				}
			}
		}
	}
}

// publishBatch claims one batch, writes it in a single WriteMessages call and
// records the per-message result. It returns the number of rows claimed.
func publishBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	log *zap.Logger,
) (int, error) {
	batch, err := repo.ClaimBatch(ctx, batchSize, claimLease)
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}

	msgs := make([]kafkago.Message, len(batch))
	for i, event := range batch {
		msgs[i] = toMessage(event)
	}

	results := writeResults(writer.WriteMessages(ctx, msgs...), len(batch))

	var sent, failed int
	for i, event := range batch {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
			zap.String("aggregate_id", event.AggregateID),
		}

		if werr := results[i]; werr != nil {
			failed++
			if event.LastAttempt() {
				log.Error("outbox event dead-lettered", append(fields, zap.Int("attempts", event.RetryCount+1), zap.Error(werr))...)
			} else {
				log.Warn("outbox event publish failed", append(fields, zap.Int("retry_count", event.RetryCount), zap.Error(werr))...)
			}
			if markErr := repo.MarkFailed(ctx, event.ID, werr.Error()); markErr != nil {
				log.Error("record outbox failure failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		if markErr := repo.MarkSent(ctx, event.ID); markErr != nil {
			// the claim lease expires and the event is published again;
			// consumers dedupe on offset and re-check state
			log.Error("mark outbox sent failed", append(fields, zap.Error(markErr))...)
			continue
		}
		sent++
	}

	log.Info("outbox batch published",
		zap.Int("claimed", len(batch)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return len(batch), nil
}

// writeResults spreads a WriteMessages error over the batch. kafka-go reports
// partial failures as WriteErrors indexed like the input; any other error
// fails every message.
func writeResults(err error, n int) []error {
	results := make([]error, n)
	if err == nil {
		return results
	}

	var perMessage kafkago.WriteErrors
	if errors.As(err, &perMessage) && len(perMessage) == n {
		copy(results, perMessage)
		return results
	}
	for i := range results {
		results[i] = err
	}
	return results
}
