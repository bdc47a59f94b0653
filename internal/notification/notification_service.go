package notification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-ats/internal/candidate"
	"go-ats/internal/company"
	"go-ats/internal/emailtemplate"
	"go-ats/internal/events"
	"go-ats/internal/interview"
	"go-ats/internal/mailer"
	"go-ats/internal/offerletter"
	"go-ats/internal/shared/apperror"

	"go.uber.org/zap"
)

// ErrUndeliverable marks events that will never produce an email; consumers
// commit them instead of retrying.
var ErrUndeliverable = errors.New("notification: undeliverable")

var ist = time.FixedZone("IST", 5*3600+30*60)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	OfferLetterSent(ctx context.Context, evt events.OfferLetterSentEvent) error
	InterviewScheduled(ctx context.Context, evt events.InterviewScheduledEvent) error
	CandidateRejected(ctx context.Context, evt events.CandidateRejectedEvent) error
}

type service struct {
	offers     offerletter.Service
	templates  emailtemplate.Service
	candidates candidate.Service
	interviews interview.Service
	companies  company.Service
	mailer     mailer.Mailer
	logger     *zap.Logger
}

func NewService(
	offers offerletter.Service,
	templates emailtemplate.Service,
	candidates candidate.Service,
	interviews interview.Service,
	companies company.Service,
	m mailer.Mailer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		offers:     offers,
		templates:  templates,
		candidates: candidates,
		interviews: interviews,
		companies:  companies,
		mailer:     m,
		logger:     l,
	}
}

func (s *service) OfferLetterSent(ctx context.Context, evt events.OfferLetterSentEvent) error {
	doc, err := s.offers.RenderPDF(ctx, evt.CompanyID, evt.OfferLetterID)
	if err != nil {
		return classify("render offer letter", err)
	}
	if strings.TrimSpace(doc.CandidateEmail) == "" {
		return fmt.Errorf("%w: candidate %s has no email", ErrUndeliverable, evt.CandidateID)
	}

	vars := map[string]string{
		"candidate_name": doc.CandidateName,
		"designation":    doc.Offer.Designation,
		"company_name":   doc.CompanyName,
		"annual_ctc":     offerletter.FormatRupees(doc.Offer.AnnualCTC),
		"joining_date":   formatDate(doc.Offer.JoiningDate),
		"offer_number":   doc.Offer.OfferNumber,
	}
	rendered, err := s.templates.RenderActive(ctx, evt.CompanyID, emailtemplate.TypeOfferLetter, vars)
	if err != nil {
		return classify("render offer letter template", err)
	}

	return s.send(ctx, mailer.Message{
		To:      []string{doc.CandidateEmail},
		Subject: rendered.Subject,
		HTML:    rendered.BodyHTML,
		Tags: map[string]string{
			"event":      events.OfferLetterSentType,
			"company_id": evt.CompanyID,
		},
		Attachments: []mailer.Attachment{{Filename: doc.FileName, Content: doc.Content}},
	}, zap.String("offer_letter_id", evt.OfferLetterID))
}

func (s *service) InterviewScheduled(ctx context.Context, evt events.InterviewScheduledEvent) error {
	iv, err := s.interviews.GetByID(ctx, evt.CompanyID, evt.InterviewID)
	if err != nil {
		return classify("load interview", err)
	}
	if iv.Status != interview.StatusScheduled {
		return fmt.Errorf("%w: interview %s is %s", ErrUndeliverable, iv.ID, iv.Status)
	}
	// A later reschedule emits its own event; skip stale ones.
	if scheduled, err := time.Parse(time.RFC3339, iv.ScheduledAt); err == nil && !scheduled.Equal(evt.ScheduledAt.Truncate(time.Second)) {
		return fmt.Errorf("%w: interview %s was rescheduled again", ErrUndeliverable, iv.ID)
	}

	cand, companyName, err := s.recipient(ctx, evt.CompanyID, evt.CandidateID)
	if err != nil {
		return err
	}

	vars := map[string]string{
		"candidate_name":   cand.FullName,
		"company_name":     companyName,
		"round":            strconv.Itoa(iv.Round),
		"scheduled_at":     evt.ScheduledAt.In(ist).Format("Mon, 02 Jan 2006 03:04 PM") + " IST",
		"duration_minutes": strconv.Itoa(iv.DurationMinutes),
		"mode":             strings.ToLower(iv.Mode),
		"venue":            venue(iv),
	}
	rendered, err := s.templates.RenderActive(ctx, evt.CompanyID, emailtemplate.TypeInterviewInvite, vars)
	if err != nil {
		return classify("render interview invite template", err)
	}

	return s.send(ctx, mailer.Message{
		To:      []string{cand.Email},
		Subject: rendered.Subject,
		HTML:    rendered.BodyHTML,
		Tags: map[string]string{
			"event":      events.InterviewScheduledType,
			"company_id": evt.CompanyID,
		},
	}, zap.String("interview_id", evt.InterviewID), zap.Bool("rescheduled", evt.Rescheduled))
}

func (s *service) CandidateRejected(ctx context.Context, evt events.CandidateRejectedEvent) error {
	cand, companyName, err := s.recipient(ctx, evt.CompanyID, evt.CandidateID)
	if err != nil {
		return err
	}

	vars := map[string]string{
		"candidate_name": cand.FullName,
		"company_name":   companyName,
		"position":       cand.PositionApplied,
	}
	rendered, err := s.templates.RenderActive(ctx, evt.CompanyID, emailtemplate.TypeRejection, vars)
	if err != nil {
		return classify("render rejection template", err)
	}

	return s.send(ctx, mailer.Message{
		To:      []string{cand.Email},
		Subject: rendered.Subject,
		HTML:    rendered.BodyHTML,
		Tags: map[string]string{
			"event":      events.CandidateRejectedType,
			"company_id": evt.CompanyID,
		},
	}, zap.String("candidate_id", evt.CandidateID))
}

func (s *service) recipient(ctx context.Context, companyID, candidateID string) (candidate.CandidateResponse, string, error) {
	cand, err := s.candidates.GetByID(ctx, companyID, candidateID)
	if err != nil {
		return candidate.CandidateResponse{}, "", classify("load candidate", err)
	}
	if strings.TrimSpace(cand.Email) == "" {
		return candidate.CandidateResponse{}, "", fmt.Errorf("%w: candidate %s has no email", ErrUndeliverable, candidateID)
	}

	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return candidate.CandidateResponse{}, "", classify("load company", err)
	}
	return cand, comp.Name, nil
}

func (s *service) send(ctx context.Context, msg mailer.Message, fields ...zap.Field) error {
	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		if errors.Is(err, mailer.ErrNoRecipients) {
			return fmt.Errorf("%w: %v", ErrUndeliverable, err)
		}
		return fmt.Errorf("send email: %w", err)
	}
	s.logger.Info("notification sent", append(fields, zap.String("message_id", id), zap.Strings("to", msg.To))...)
	return nil
}

// classify turns lookups that can never succeed into ErrUndeliverable.
func classify(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperror.CodeNotFound, apperror.CodeInvalidInput:
			return fmt.Errorf("%w: %s: %v", ErrUndeliverable, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func venue(iv interview.InterviewResponse) string {
	switch iv.Mode {
	case interview.ModeOnline:
		if iv.MeetingLink != "" {
			return iv.MeetingLink
		}
		return "Meeting link to follow"
	case interview.ModePhone:
		return "We will call you on your registered number"
	default:
		return iv.Location
	}
}

func formatDate(isoDate string) string {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format("02 January 2006")
}
