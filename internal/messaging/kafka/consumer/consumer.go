package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const processedTTL = 24 * time.Hour

// Handler failures are retried in place, doubling from retryBaseDelay up to
// retryMaxDelay. Later offsets are not fetched until the message succeeds.
var (
	retryBaseDelay = time.Second
	retryMaxDelay  = time.Minute
)

// ErrSkip tells the loop to commit a message without treating it as a failure.
var ErrSkip = errors.New("consumer: skip message")

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func processedKey(msg kafkago.Message) string {
	return fmt.Sprintf("kafka:processed:%s:%d:%d", msg.Topic, msg.Partition, msg.Offset)
}

// consume runs the fetch/handle/commit loop until ctx is cancelled. Poison
// messages and ErrSkip are committed; other handler errors are retried on the
// same message, so a later commit never moves the group past a failure. When
// rdb is set, handled offsets are remembered so a redelivery does not send twice.
func consume[E any](
	ctx context.Context,
	reader MessageReader,
	rdb *redis.Client,
	log *zap.Logger,
	handle func(context.Context, E) error,
) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		if alreadyProcessed(ctx, rdb, msg, log) {
			log.Info("message already processed, committing", fields...)
			commit(ctx, reader, msg, log)
			continue
		}

		var event E
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode message failed", append(fields, zap.Error(err))...)
			commit(ctx, reader, msg, log)
			continue
		}

		if err := handleWithRetry(ctx, event, handle, log, fields); err != nil {
			if errors.Is(err, ErrSkip) {
				log.Warn("message skipped", append(fields, zap.Error(err))...)
				commit(ctx, reader, msg, log)
				continue
			}
			// ctx cancelled mid-retry; the offset stays uncommitted
			log.Info("consumer stopped", fields...)
			return
		}

		markProcessed(ctx, rdb, msg, log)
		if commit(ctx, reader, msg, log) {
			log.Info("message handled", fields...)
		}
	}
}

func handleWithRetry[E any](
	ctx context.Context,
	event E,
	handle func(context.Context, E) error,
	log *zap.Logger,
	fields []zap.Field,
) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := handle(ctx, event)
		if err == nil || errors.Is(err, ErrSkip) {
			return err
		}
		log.Error("handle message failed, retrying",
			append(fields, zap.Int("attempt", attempt), zap.Duration("backoff", delay), zap.Error(err))...)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return false
	}
	return true
}

func alreadyProcessed(ctx context.Context, rdb *redis.Client, msg kafkago.Message, log *zap.Logger) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, processedKey(msg)).Result()
	if err != nil {
		log.Warn("processed check failed", zap.Error(err))
		return false
	}
	return n > 0
}

func markProcessed(ctx context.Context, rdb *redis.Client, msg kafkago.Message, log *zap.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, processedKey(msg), 1, processedTTL).Err(); err != nil {
		log.Warn("mark processed failed", zap.Error(err))
	}
}
