package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-ats/internal/events"
	"go-ats/internal/mailer"
	"go-ats/internal/messaging/kafka/consumer"
	"go-ats/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer sends candidate emails for offer, interview and rejection events
// until SIGINT/SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, db, rdb, err := connectStores(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer rdb.Close()

	svc, err := buildServices(cfg, db, gormDB, rdb, logger)
	if err != nil {
		return err
	}

	notifier := notification.NewService(
		svc.offerLetter,
		svc.emailTemplate,
		svc.candidate,
		svc.interview,
		svc.company,
		mailer.NewResend(cfg.ResendAPIKey, cfg.MailFrom, logger),
		logger,
	)

	offerReader := newReader(cfg, events.OfferLetterSentTopic)
	defer offerReader.Close()
	interviewReader := newReader(cfg, events.InterviewScheduledTopic)
	defer interviewReader.Close()
	rejectionReader := newReader(cfg, events.CandidateRejectedTopic)
	defer rejectionReader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		consumer.ConsumeOfferLetterSent(ctx, offerReader, rdb, notifier, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeInterviewScheduled(ctx, interviewReader, rdb, notifier, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeCandidateRejected(ctx, rejectionReader, rdb, notifier, logger)
	}()

	<-ctx.Done()
	logger.Info("consumer shutting down")
	wg.Wait()

	return nil
}

func newReader(cfg Config, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          topic,
		GroupID:        cfg.ConsumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
