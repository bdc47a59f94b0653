package consumer

import (
	"context"
	"errors"
	"fmt"

	"go-ats/internal/events"
	"go-ats/internal/notification"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func ConsumeOfferLetterSent(
	ctx context.Context,
	reader MessageReader,
	rdb *redis.Client,
	svc notification.Service,
	logger *zap.Logger,
) {
	consume(ctx, reader, rdb, logger.Named("kafka.consumer.offer_letter_sent"),
		func(ctx context.Context, evt events.OfferLetterSentEvent) error {
			if evt.OfferLetterID == "" || evt.CompanyID == "" {
				return fmt.Errorf("%w: offer_letter.sent without ids", ErrSkip)
			}
			return skipUndeliverable(svc.OfferLetterSent(ctx, evt))
		})
}

func ConsumeInterviewScheduled(
	ctx context.Context,
	reader MessageReader,
	rdb *redis.Client,
	svc notification.Service,
	logger *zap.Logger,
) {
	consume(ctx, reader, rdb, logger.Named("kafka.consumer.interview_scheduled"),
		func(ctx context.Context, evt events.InterviewScheduledEvent) error {
			if evt.InterviewID == "" || evt.CompanyID == "" {
				return fmt.Errorf("%w: interview.scheduled without ids", ErrSkip)
			}
			return skipUndeliverable(svc.InterviewScheduled(ctx, evt))
		})
}

func ConsumeCandidateRejected(
	ctx context.Context,
	reader MessageReader,
	rdb *redis.Client,
	svc notification.Service,
	logger *zap.Logger,
) {
	consume(ctx, reader, rdb, logger.Named("kafka.consumer.candidate_rejected"),
		func(ctx context.Context, evt events.CandidateRejectedEvent) error {
			if evt.CandidateID == "" || evt.CompanyID == "" {
				return fmt.Errorf("%w: candidate.rejected without ids", ErrSkip)
			}
			return skipUndeliverable(svc.CandidateRejected(ctx, evt))
		})
}

func skipUndeliverable(err error) error {
	if errors.Is(err, notification.ErrUndeliverable) {
		return fmt.Errorf("%w: %v", ErrSkip, err)
	}
	return err
}
