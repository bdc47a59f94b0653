package offerletter_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-ats/internal/candidate"
	candidateerrors "go-ats/internal/candidate/errors"
	candidateMock "go-ats/internal/candidate/mock"
	"go-ats/internal/events"
	"go-ats/internal/messaging/kafka"
	kafkaMock "go-ats/internal/messaging/kafka/mock"
	"go-ats/internal/offerletter"
	offerlettererrors "go-ats/internal/offerletter/errors"
	offerletterMock "go-ats/internal/offerletter/mock"
	"go-ats/internal/salary"
	salaryerrors "go-ats/internal/salary/errors"
	counterMock "go-ats/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    offerletter.Service
	repo       *offerletterMock.MockRepository
	candidates *candidateMock.MockRepository
	counter    *counterMock.MockRepository
	outbox     *kafkaMock.MockOutboxRepository
	redismock  redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	dbRedis, redisMock := redismock.NewClientMock()

	repo := offerletterMock.NewMockRepository(ctrl)
	candidates := candidateMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := offerletter.NewService(db, repo, candidates, counterRepo, outbox, salary.NewService(), dbRedis)

	return &serviceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		candidates: candidates,
		counter:    counterRepo,
		outbox:     outbox,
		redismock:  redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func readyCandidate(companyID string, stage candidate.Stage) *candidate.Candidate {
	return &candidate.Candidate{
		ID:                uuid.New(),
		CompanyID:         uuid.MustParse(companyID),
		CandidateNumber:   "CAN-000001",
		FullName:          "Asha Verma",
		Email:             "asha@example.com",
		Phone:             "9876543210",
		PositionApplied:   "Backend Engineer",
		Stage:             stage,
		IdentityDocuments: candidate.IdentityDocumentSet{PAN: "ABCDE1234F"},
		CurrentSection:    len(candidate.Sections) - 1,
		CompletedSections: []string{"personal", "education", "employment", "documents", "review"},
	}
}

func storedOffer(companyID, status string) *offerletter.OfferLetter {
	b, _ := salary.Calculate(1000000)
	o := &offerletter.OfferLetter{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		OfferNumber: "OFR-000003",
		CandidateID: uuid.New(),
		Designation: "Backend Engineer",
		JoiningDate: time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour),
		AnnualCTC:   b.AnnualCTC,
		Status:      status,
		CreatedBy:   uuid.New(),
		CreatedAt:   time.Now(),
	}
	o.Components = offerletter.StoredBreakdown{
		Basic:              b.Basic,
		Conveyance:         b.Conveyance,
		HRA:                b.HRA,
		Medical:            b.Medical,
		Flexi:              b.Flexi,
		TotalA:             b.TotalA,
		EmployerPF:         b.EmployerPF,
		TotalB:             b.TotalB,
		TotalAB:            b.TotalAB,
		ProfessionalTax:    b.ProfessionalTax,
		EmployeePF:         b.EmployeePF,
		Insurance:          b.Insurance,
		TotalDeductions:    b.TotalDeductions,
		NetTakeHomeMonthly: b.NetTakeHomeMonthly,
	}
	return o
}

func joiningIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestOfferLetterService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	newReq := func(candidateID string) offerletter.CreateOfferLetterRequest {
		return offerletter.CreateOfferLetterRequest{
			CandidateID: candidateID,
			Designation: " Backend Engineer ",
			Department:  "Platform",
			JoiningDate: joiningIn(30),
			AnnualCTC:   1000000,
		}
	}

	t.Run("success - freezes breakdown and moves candidate to offered", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cand := readyCandidate(companyID, candidate.StageInterview)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)
		deps.repo.EXPECT().HasActiveOffer(ctx, companyID, cand.ID.String()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, "offer_number").Return(int64(12), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *offerletter.OfferLetter) error {
				assert.Equal(t, "OFR-000012", o.OfferNumber)
				assert.Equal(t, "Backend Engineer", o.Designation)
				assert.Equal(t, offerletter.StatusDraft, o.Status)
				assert.Equal(t, int64(1000000), o.AnnualCTC)
				assert.Equal(t, int64(1000000), o.Components.TotalAB.Annual)
				assert.Equal(t, int64(1800), o.Components.EmployerPF.Monthly)
				assert.Equal(t, int64(79033), o.Components.NetTakeHomeMonthly)
				return nil
			})
		deps.candidates.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *candidate.Candidate) error {
				assert.Equal(t, candidate.StageOffered, c.Stage)
				return nil
			})
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, actorID, newReq(cand.ID.String()))

		require.NoError(t, err)
		assert.Equal(t, "OFR-000012", resp.OfferNumber)
		assert.Equal(t, int64(79033), resp.NetTakeHomeMonthly)
		assert.Equal(t, actorID, resp.CreatedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("candidate already offered keeps stage", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cand := readyCandidate(companyID, candidate.StageOffered)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)
		deps.repo.EXPECT().HasActiveOffer(ctx, companyID, cand.ID.String()).Return(false, nil)
		deps.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(ctx, companyID, "offer_number").Return(int64(13), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, companyID, actorID, newReq(cand.ID.String()))

		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("incomplete profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cand := readyCandidate(companyID, candidate.StageInterview)
		cand.CompletedSections = []string{"personal"}
		cand.CurrentSection = 1

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, newReq(cand.ID.String()))

		assert.ErrorIs(t, err, candidateerrors.ErrProfileIncomplete)
	})

	t.Run("candidate still screening", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cand := readyCandidate(companyID, candidate.StageScreening)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, newReq(cand.ID.String()))

		assert.ErrorIs(t, err, offerlettererrors.ErrCandidateNotReady)
	})

	t.Run("active offer exists", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cand := readyCandidate(companyID, candidate.StageOffered)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)
		deps.repo.EXPECT().HasActiveOffer(ctx, companyID, cand.ID.String()).Return(true, nil)

		_, err := deps.service.Create(ctx, companyID, actorID, newReq(cand.ID.String()))

		assert.ErrorIs(t, err, offerlettererrors.ErrActiveOfferExists)
	})

	t.Run("candidate not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		candidateID := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, candidateID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, companyID, actorID, newReq(candidateID))

		assert.ErrorIs(t, err, offerlettererrors.ErrCandidateNotFound)
	})

	t.Run("fractional ctc rejected before any query", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := newReq(uuid.NewString())
		req.AnnualCTC = 1000000.5

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidCTC)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("joining date validation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := newReq(uuid.NewString())
		req.JoiningDate = joiningIn(-1)
		_, err := deps.service.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, offerlettererrors.ErrJoiningDateInPast)

		req.JoiningDate = "01/02/2027"
		_, err = deps.service.Create(ctx, companyID, actorID, req)
		assert.ErrorIs(t, err, offerlettererrors.ErrInvalidJoiningDate)
	})
}

func TestOfferLetterService_GetBreakdownUsesStoredColumns(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	offer := storedOffer(companyID, offerletter.StatusSent)
	// A value the calculator would never produce proves nothing is recomputed.
	offer.Components.Flexi = salary.Amount{Monthly: 1, Annual: 2}

	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

	resp, err := deps.service.GetBreakdown(ctx, companyID, offer.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "OFR-000003", resp.OfferNumber)
	assert.Equal(t, salary.Amount{Monthly: 1, Annual: 2}, resp.Breakdown.Flexi)
	assert.Nil(t, resp.Breakdown.ESI)
	assert.Equal(t, int64(1000000), resp.Breakdown.TotalAB.Annual)
	assert.Equal(t, offer.Components.TotalA.Annual, resp.TaxEstimate.AnnualIncome)
}

func TestOfferLetterService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, companyID, "nope")
		assert.ErrorIs(t, err, offerlettererrors.ErrInvalidOfferID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, offerlettererrors.ErrOfferNotFound)

		_, err := deps.service.GetByID(ctx, companyID, id)
		assert.ErrorIs(t, err, offerlettererrors.ErrOfferNotFound)
	})
}

func TestOfferLetterService_Regenerate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("draft gets a fresh breakdown", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusDraft)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, o *offerletter.OfferLetter) error {
				assert.Equal(t, int64(1200000), o.AnnualCTC)
				assert.Equal(t, int64(1200000), o.Components.TotalAB.Annual)
				assert.Equal(t, "Senior Backend Engineer", o.Designation)
				return nil
			})

		resp, err := deps.service.Regenerate(ctx, companyID, offer.ID.String(), offerletter.RegenerateOfferLetterRequest{
			AnnualCTC:   1200000,
			Designation: "Senior Backend Engineer",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1200000), resp.AnnualCTC)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("sent offer is frozen", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusSent)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

		_, err := deps.service.Regenerate(ctx, companyID, offer.ID.String(), offerletter.RegenerateOfferLetterRequest{AnnualCTC: 1200000})

		assert.ErrorIs(t, err, offerlettererrors.ErrOnlyDraftEditable)
	})
}

func TestOfferLetterService_Send(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("draft is sent and event is queued", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusDraft)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, row kafka.OutboxEvent) error {
				assert.Equal(t, events.OfferLetterSentType, row.EventType)
				assert.Equal(t, events.OfferLetterSentTopic, row.Topic)
				assert.Equal(t, offer.ID.String(), row.AggregateID)

				var evt events.OfferLetterSentEvent
				require.NoError(t, json.Unmarshal(row.Payload, &evt))
				assert.Equal(t, offer.CandidateID.String(), evt.CandidateID)
				assert.Equal(t, actorID, evt.SentBy)
				return nil
			})

		resp, err := deps.service.Send(ctx, companyID, actorID, offer.ID.String())

		require.NoError(t, err)
		assert.Equal(t, offerletter.StatusSent, resp.Status)
		require.NotNil(t, resp.SentBy)
		assert.Equal(t, actorID, *resp.SentBy)
		assert.NotNil(t, resp.SentAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cannot send twice", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusSent)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

		_, err := deps.service.Send(ctx, companyID, actorID, offer.ID.String())

		assert.ErrorIs(t, err, offerlettererrors.ErrInvalidStatusTransition)
	})
}

func TestOfferLetterService_Accept(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("sent offer hires the candidate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusSent)
		cand := readyCandidate(companyID, candidate.StageOffered)
		cand.ID = offer.CandidateID

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.candidates.EXPECT().WithTx(gomock.Any()).Return(deps.candidates)
		deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.candidates.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *candidate.Candidate) error {
				assert.Equal(t, candidate.StageHired, c.Stage)
				return nil
			})
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Accept(ctx, companyID, offer.ID.String())

		require.NoError(t, err)
		assert.Equal(t, offerletter.StatusAccepted, resp.Status)
		assert.NotNil(t, resp.RespondedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("draft cannot be accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusDraft)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

		_, err := deps.service.Accept(ctx, companyID, offer.ID.String())

		assert.ErrorIs(t, err, offerlettererrors.ErrInvalidStatusTransition)
	})
}

func TestOfferLetterService_DeclineAndWithdraw(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("decline needs a reason", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decline(ctx, companyID, uuid.NewString(), "  ")
		assert.ErrorIs(t, err, offerlettererrors.ErrDeclineReasonRequired)
	})

	t.Run("decline leaves candidate untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusSent)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Decline(ctx, companyID, offer.ID.String(), " Counter offer accepted ")

		require.NoError(t, err)
		assert.Equal(t, offerletter.StatusDeclined, resp.Status)
		assert.Equal(t, "Counter offer accepted", resp.DeclineReason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("accepted offer cannot be withdrawn", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusAccepted)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

		_, err := deps.service.Withdraw(ctx, companyID, offer.ID.String())

		assert.ErrorIs(t, err, offerlettererrors.ErrInvalidStatusTransition)
	})

	t.Run("draft can be withdrawn", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusDraft)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Withdraw(ctx, companyID, offer.ID.String())

		require.NoError(t, err)
		assert.Equal(t, offerletter.StatusWithdrawn, resp.Status)
	})
}

func TestOfferLetterService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("only drafts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusSent)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)

		err := deps.service.Delete(ctx, companyID, offer.ID.String())
		assert.ErrorIs(t, err, offerlettererrors.ErrOnlyDraftDeletable)
	})

	t.Run("draft deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		offer := storedOffer(companyID, offerletter.StatusDraft)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
		deps.repo.EXPECT().Delete(ctx, companyID, offer.ID.String()).Return(nil)

		err := deps.service.Delete(ctx, companyID, offer.ID.String())
		require.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestOfferLetterService_RenderPDF(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	offer := storedOffer(companyID, offerletter.StatusSent)
	cand := readyCandidate(companyID, candidate.StageOffered)
	cand.ID = offer.CandidateID

	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, offer.ID.String()).Return(offer, nil)
	deps.candidates.EXPECT().FindByIDAndCompany(ctx, companyID, cand.ID.String()).Return(cand, nil)
	deps.repo.EXPECT().CompanyLetterhead(ctx, companyID).Return(offerletter.Letterhead{
		Name:          "Acme Technologies Pvt Ltd",
		PostalLine:    "Bengaluru, Karnataka 560001",
		SignatoryName: "Meera Iyer",
	}, nil)

	doc, err := deps.service.RenderPDF(ctx, companyID, offer.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "offer-letter-ofr-000003.pdf", doc.FileName)
	assert.Equal(t, "asha@example.com", doc.CandidateEmail)
	assert.Equal(t, "Acme Technologies Pvt Ltd", doc.CompanyName)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}

func TestOfferLetterService_Preview(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	resp, err := deps.service.Preview(context.Background(), 1000000)

	require.NoError(t, err)
	assert.Equal(t, int64(1000000), resp.Breakdown.TotalAB.Annual)
	assert.Nil(t, resp.Breakdown.ESI)

	_, err = deps.service.Preview(context.Background(), 0)
	assert.ErrorIs(t, err, salaryerrors.ErrInvalidCTC)
}
