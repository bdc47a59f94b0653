package candidate_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-ats/internal/candidate"
	candidateerrors "go-ats/internal/candidate/errors"
	candidateMock "go-ats/internal/candidate/mock"
	"go-ats/internal/events"
	"go-ats/internal/messaging/kafka"
	kafkaMock "go-ats/internal/messaging/kafka/mock"
	"go-ats/internal/shared/contextutil"
	counterMock "go-ats/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   candidate.Service
	repo      *candidateMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	dbRedis, redisMock := redismock.NewClientMock()
	repo := candidateMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := candidate.NewService(db, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
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

func validPersonal() candidate.PersonalDetails {
	return candidate.PersonalDetails{
		FullName:        " Asha Verma ",
		Email:           "Asha@Example.com",
		Phone:           "9876543210",
		PositionApplied: "Backend Engineer",
		ExpectedCTC:     1800000,
	}
}

func TestCandidateService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - numbered and personal section done", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "candidate_number").
			Return(int64(7), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *candidate.Candidate) error {
				assert.Equal(t, "CAN-000007", c.CandidateNumber)
				assert.Equal(t, "Asha Verma", c.FullName)
				assert.Equal(t, "asha@example.com", c.Email)
				assert.Equal(t, candidate.StageApplied, c.Stage)
				assert.Equal(t, 1, c.CurrentSection)
				assert.Equal(t, []string{"personal"}, c.CompletedSections)
				return nil
			})
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, candidate.CreateCandidateRequest{PersonalDetails: validPersonal()})

		require.NoError(t, err)
		assert.Equal(t, "CAN-000007", resp.CandidateNumber)
		assert.Equal(t, "education", resp.Wizard.CurrentSection)
		assert.False(t, resp.Wizard.Complete)
		assert.Empty(t, resp.Education)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "candidate_number").
			Return(int64(8), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_candidate_email"})

		_, err := deps.service.Create(ctx, companyID, candidate.CreateCandidateRequest{PersonalDetails: validPersonal()})

		assert.ErrorIs(t, err, candidateerrors.ErrCandidateAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid personal details never open a transaction", func(t *testing.T) {
		req := validPersonal()
		req.Phone = ""

		_, err := deps.service.Create(ctx, companyID, candidate.CreateCandidateRequest{PersonalDetails: req})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCandidateService_GetOptions(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := candidate.GetCandidateOptionsKey(companyID)

	t.Run("cache hit", func(t *testing.T) {
		cached := []candidate.CandidateOption{{ID: "c-1", FullName: "Asha Verma", Stage: "APPLIED"}}
		data, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(cacheKey).SetVal(string(data))

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		id := uuid.New()
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return([]candidate.Candidate{{ID: id, CandidateNumber: "CAN-000001", FullName: "Asha Verma", Email: "asha@example.com", Stage: candidate.StageScreening}}, nil)

		want := []candidate.CandidateOption{{
			ID:              id.String(),
			CandidateNumber: "CAN-000001",
			FullName:        "Asha Verma",
			Email:           "asha@example.com",
			Stage:           "SCREENING",
		}}
		data, _ := json.Marshal(want)
		deps.redismock.ExpectSet(cacheKey, data, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return(nil, errors.New("db down"))

		_, err := deps.service.GetOptions(ctx, companyID)
		assert.EqualError(t, err, "db down")
	})
}

func TestCandidateService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, companyID, "nope")
		assert.ErrorIs(t, err, candidateerrors.ErrInvalidCandidateID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, companyID, id)
		assert.ErrorIs(t, err, candidateerrors.ErrCandidateNotFound)
	})
}

func TestCandidateService_SaveSection(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	existing := func() *candidate.Candidate {
		c := completeCandidate()
		c.ID = uuid.New()
		c.CompanyID = uuid.MustParse(companyID)
		c.Stage = candidate.StageScreening
		c.Education = nil
		c.IdentityDocuments = candidate.IdentityDocumentSet{}
		c.CurrentSection = 1
		c.CompletedSections = []string{"personal"}
		return c
	}

	t.Run("education saved and wizard advances", func(t *testing.T) {
		c := existing()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().
			Update(ctx, c).
			DoAndReturn(func(_ context.Context, got *candidate.Candidate) error {
				assert.Len(t, got.Education, 1)
				assert.Equal(t, 2, got.CurrentSection)
				assert.Equal(t, []string{"personal", "education"}, got.CompletedSections)
				return nil
			})

		resp, err := deps.service.SaveSection(ctx, companyID, c.ID.String(), "education", candidate.SaveSectionRequest{
			Education: []candidate.EducationEntry{{Institution: "NIT Trichy", Degree: "B.E.", StartYear: 2012, EndYear: 2016}},
		})

		require.NoError(t, err)
		assert.Equal(t, "employment", resp.Wizard.CurrentSection)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("documents are normalised", func(t *testing.T) {
		c := existing()
		c.Education = []candidate.EducationEntry{{Institution: "NIT Trichy", Degree: "B.E.", StartYear: 2012}}
		c.CurrentSection = 3
		c.CompletedSections = []string{"personal", "education", "employment"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().Update(ctx, c).Return(nil)

		resp, err := deps.service.SaveSection(ctx, companyID, c.ID.String(), "documents", candidate.SaveSectionRequest{
			Documents: &candidate.IdentityDocumentSet{PAN: " abcde1234f", Aadhaar: "2345 6789 0123"},
		})

		require.NoError(t, err)
		assert.Equal(t, "ABCDE1234F", resp.IdentityDocuments.PAN)
		assert.Equal(t, "234567890123", resp.IdentityDocuments.Aadhaar)
		assert.Equal(t, "review", resp.Wizard.CurrentSection)
	})

	t.Run("section ahead of progress is locked", func(t *testing.T) {
		c := existing()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)

		_, err := deps.service.SaveSection(ctx, companyID, c.ID.String(), "documents", candidate.SaveSectionRequest{
			Documents: &candidate.IdentityDocumentSet{PAN: "ABCDE1234F"},
		})

		assert.ErrorIs(t, err, candidateerrors.ErrSectionLocked)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := deps.service.SaveSection(ctx, companyID, uuid.NewString(), "hobbies", candidate.SaveSectionRequest{})
		assert.ErrorIs(t, err, candidateerrors.ErrUnknownSection)
	})
}

func TestCandidateService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	reviewed := func(stage candidate.Stage) *candidate.Candidate {
		c := completeCandidate()
		c.ID = uuid.New()
		c.CompanyID = uuid.MustParse(companyID)
		c.Stage = stage
		c.CurrentSection = 4
		c.CompletedSections = []string{"personal", "education", "employment", "documents", "review"}
		return c
	}

	t.Run("edit reopens review", func(t *testing.T) {
		c := reviewed(candidate.StageInterview)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().
			Update(ctx, c).
			DoAndReturn(func(_ context.Context, got *candidate.Candidate) error {
				assert.Equal(t, "Asha Verma", got.FullName)
				assert.Equal(t, []string{"personal", "education", "employment", "documents"}, got.CompletedSections)
				return nil
			})
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID, c.ID.String(), candidate.UpdateCandidateRequest{PersonalDetails: validPersonal()})

		require.NoError(t, err)
		assert.False(t, resp.Wizard.Complete)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("hired candidate is closed", func(t *testing.T) {
		c := reviewed(candidate.StageHired)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)

		_, err := deps.service.Update(ctx, companyID, c.ID.String(), candidate.UpdateCandidateRequest{PersonalDetails: validPersonal()})

		assert.ErrorIs(t, err, candidateerrors.ErrCandidateClosed)
		assert.Equal(t, "Asha Verma", c.FullName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCandidateService_WizardBack(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	for _, stage := range []candidate.Stage{candidate.StageHired, candidate.StageRejected, candidate.StageWithdrawn} {
		t.Run(string(stage)+" candidate is closed", func(t *testing.T) {
			c := completeCandidate()
			c.ID = uuid.New()
			c.Stage = stage
			c.CurrentSection = 2
			c.CompletedSections = []string{"personal", "education"}

			expectTx(t, deps.sqlMock, false)
			deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
			deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)

			_, err := deps.service.WizardBack(ctx, companyID, c.ID.String())

			assert.ErrorIs(t, err, candidateerrors.ErrCandidateClosed)
			assert.Equal(t, 2, c.CurrentSection)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}

	t.Run("steps back one section", func(t *testing.T) {
		c := completeCandidate()
		c.ID = uuid.New()
		c.Stage = candidate.StageScreening
		c.CurrentSection = 2
		c.CompletedSections = []string{"personal", "education"}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().Update(ctx, c).Return(nil)

		resp, err := deps.service.WizardBack(ctx, companyID, c.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "education", resp.Wizard.CurrentSection)
	})
}

func TestCandidateService_MoveStage(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	companyID := uuid.New().String()
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	t.Run("reject writes outbox event", func(t *testing.T) {
		c := completeCandidate()
		c.ID = uuid.New()
		c.Stage = candidate.StageScreening

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().Update(ctx, c).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.CandidateRejectedTopic, e.Topic)
				assert.Equal(t, events.CandidateRejectedType, e.EventType)
				assert.Equal(t, "req-1", e.RequestID)
				assert.Equal(t, c.ID.String(), e.AggregateID)

				var payload events.CandidateRejectedEvent
				require.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, "Not a culture fit", payload.Reason)
				return nil
			})
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.MoveStage(ctx, companyID, c.ID.String(), candidate.MoveStageRequest{
			Stage:  "REJECTED",
			Reason: " Not a culture fit ",
		})

		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Stage)
		assert.Equal(t, "Not a culture fit", resp.RejectionReason)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("forward move has no event", func(t *testing.T) {
		c := completeCandidate()
		c.ID = uuid.New()
		c.Stage = candidate.StageApplied

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)
		deps.repo.EXPECT().Update(ctx, c).Return(nil)
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.MoveStage(ctx, companyID, c.ID.String(), candidate.MoveStageRequest{Stage: "SCREENING"})

		require.NoError(t, err)
		assert.Equal(t, "SCREENING", resp.Stage)
	})

	t.Run("offer needs completed profile", func(t *testing.T) {
		c := completeCandidate()
		c.ID = uuid.New()
		c.Stage = candidate.StageInterview
		c.CompletedSections = []string{"personal", "education"}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, c.ID.String()).Return(c, nil)

		_, err := deps.service.MoveStage(ctx, companyID, c.ID.String(), candidate.MoveStageRequest{Stage: "OFFERED"})

		assert.ErrorIs(t, err, candidateerrors.ErrProfileIncomplete)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestCandidateService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.redismock.ExpectDel(candidate.GetCandidateOptionsKey(companyID)).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, id), candidateerrors.ErrCandidateNotFound)
	})
}
