package emailtemplate_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-ats/internal/emailtemplate"
	emailtemplateerrors "go-ats/internal/emailtemplate/errors"
	emailtemplateMock "go-ats/internal/emailtemplate/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   emailtemplate.Service
	repo      *emailtemplateMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	dbRedis, redisMock := redismock.NewClientMock()
	repo := emailtemplateMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   emailtemplate.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestEmailTemplateService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("active template sanitised and others deactivated", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		var created *emailtemplate.EmailTemplate
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl *emailtemplate.EmailTemplate) error {
				created = tpl
				assert.Equal(t, "<p>Hi {{candidate_name}}</p>", tpl.BodyHTML)
				return nil
			})
		deps.repo.EXPECT().
			DeactivateType(ctx, companyID, emailtemplate.TypeOfferLetter, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, exceptID string) error {
				assert.Equal(t, created.ID.String(), exceptID)
				return nil
			})
		deps.redismock.ExpectDel(emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeOfferLetter)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, actorID, emailtemplate.CreateEmailTemplateRequest{
			Name:     "Offer v2",
			Type:     emailtemplate.TypeOfferLetter,
			Subject:  "Offer for {{candidate_name}}",
			BodyHTML: `<p>Hi {{candidate_name}}</p><script>x()</script>`,
			IsActive: true,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"candidate_name"}, resp.Variables)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("body that is only script", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, emailtemplate.CreateEmailTemplateRequest{
			Name:     "Bad",
			Type:     emailtemplate.TypeGeneral,
			Subject:  "x",
			BodyHTML: `<script>x()</script>`,
		})
		assert.ErrorIs(t, err, emailtemplateerrors.ErrEmptyBody)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, emailtemplate.CreateEmailTemplateRequest{
			Name: "x", Type: "SMS", Subject: "x", BodyHTML: "<p>x</p>",
		})
		assert.ErrorIs(t, err, emailtemplateerrors.ErrInvalidTemplateType)
	})
}

func TestEmailTemplateService_GetActiveByType(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := emailtemplate.EmailTemplateResponse{ID: "t-1", Type: emailtemplate.TypeRejection, Subject: "cached"}
		data, _ := json.Marshal(cached)
		key := emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeRejection)
		deps.redismock.ExpectGet(key).SetVal(string(data))

		resp, err := deps.service.GetActiveByType(ctx, companyID, emailtemplate.TypeRejection)

		require.NoError(t, err)
		assert.Equal(t, "cached", resp.Subject)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("company template cached on miss", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		tpl := &emailtemplate.EmailTemplate{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
			Name:      "Invite",
			Type:      emailtemplate.TypeInterviewInvite,
			Subject:   "Round {{round}}",
			BodyHTML:  "<p>{{candidate_name}}</p>",
			IsActive:  true,
			CreatedBy: uuid.New(),
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		key := emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeInterviewInvite)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindActiveByType(ctx, companyID, emailtemplate.TypeInterviewInvite).Return(tpl, nil)

		want := emailtemplate.EmailTemplateResponse{
			ID:        tpl.ID.String(),
			CompanyID: companyID,
			Name:      "Invite",
			Type:      emailtemplate.TypeInterviewInvite,
			Subject:   "Round {{round}}",
			BodyHTML:  "<p>{{candidate_name}}</p>",
			Variables: []string{"round", "candidate_name"},
			IsActive:  true,
			CreatedBy: tpl.CreatedBy.String(),
			CreatedAt: "2026-01-01T00:00:00Z",
			UpdatedAt: "2026-01-01T00:00:00Z",
		}
		data, _ := json.Marshal(want)
		deps.redismock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.GetActiveByType(ctx, companyID, emailtemplate.TypeInterviewInvite)

		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("falls back to built-in", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeOfferLetter)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.redismock.Regexp().ExpectSet(key, `.*`, 10*time.Minute).SetVal("OK")
		deps.repo.EXPECT().FindActiveByType(ctx, companyID, emailtemplate.TypeOfferLetter).Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetActiveByType(ctx, companyID, emailtemplate.TypeOfferLetter)

		require.NoError(t, err)
		assert.True(t, resp.BuiltIn)
		assert.Empty(t, resp.ID)
		assert.Contains(t, resp.Variables, "offer_number")
	})

	t.Run("general has no built-in", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeGeneral)
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindActiveByType(ctx, companyID, emailtemplate.TypeGeneral).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetActiveByType(ctx, companyID, emailtemplate.TypeGeneral)
		assert.ErrorIs(t, err, emailtemplateerrors.ErrNoActiveTemplate)
	})
}

func TestEmailTemplateService_Preview(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(&emailtemplate.EmailTemplate{
		Subject:  "Welcome {{candidate_name}}",
		BodyHTML: "<p>Joining on {{joining_date}}</p>",
	}, nil)

	out, err := deps.service.Preview(ctx, companyID, id, map[string]string{"candidate_name": "Asha"})

	require.NoError(t, err)
	assert.Equal(t, "Welcome Asha", out.Subject)
	assert.Equal(t, []string{"joining_date"}, out.MissingVariables)

	_, err = deps.service.Preview(ctx, companyID, "bad-id", nil)
	assert.ErrorIs(t, err, emailtemplateerrors.ErrInvalidTemplateID)
}

func TestEmailTemplateService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(&emailtemplate.EmailTemplate{Type: emailtemplate.TypeRejection}, nil)
	deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
	deps.redismock.ExpectDel(emailtemplate.GetActiveTemplateKey(companyID, emailtemplate.TypeRejection)).SetVal(1)

	require.NoError(t, deps.service.Delete(ctx, companyID, id))
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}
