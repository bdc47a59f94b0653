package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var ErrNoRecipients = errors.New("mailer: message has no recipients")

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	To          []string
	Subject     string
	HTML        string
	Tags        map[string]string
	Attachments []Attachment
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	// Send returns the provider message id.
	Send(ctx context.Context, msg Message) (string, error)
}

type resendMailer struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

// NewResend delivers through the Resend API. An empty apiKey yields a mailer
// that only logs, which keeps local and test environments off the network.
func NewResend(apiKey, from string, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}
	if strings.TrimSpace(apiKey) == "" {
		l.Warn("RESEND_API_KEY not set, emails will be logged only")
		return &logMailer{logger: l}
	}
	return &resendMailer{client: resend.NewClient(apiKey), from: from, logger: l}
}

func newResendWithClient(client *resend.Client, from string, logger *zap.Logger) Mailer {
	return &resendMailer{client: client, from: from, logger: logger}
}

func (m *resendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for name, value := range msg.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: name, Value: value})
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Content:  a.Content,
			Filename: a.Filename,
		})
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		m.logger.Error("send email failed", zap.Strings("to", msg.To), zap.String("subject", msg.Subject), zap.Error(err))
		return "", err
	}
	m.logger.Info("email sent", zap.String("message_id", sent.Id), zap.Strings("to", msg.To))
	return sent.Id, nil
}

type logMailer struct {
	logger *zap.Logger
}

func (m *logMailer) Send(_ context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}
	names := make([]string, len(msg.Attachments))
	for i, a := range msg.Attachments {
		names[i] = a.Filename
	}
	m.logger.Info("email not delivered (no provider configured)",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Strings("attachments", names),
	)
	return "", nil
}
