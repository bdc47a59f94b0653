package company_test

import (
	"context"
	"testing"

	"go-ats/internal/company"
	companyerrors "go-ats/internal/company/errors"
	companyMock "go-ats/internal/company/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockComp := &company.Company{
			ID:       id,
			Name:     "Acme Technologies Pvt Ltd",
			Email:    "hr@acme.in",
			State:    "Karnataka",
			IsActive: true,
		}
		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(mockComp, nil)

		resp, err := service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, mockComp.Name, resp.Name)
		assert.Equal(t, "Karnataka", resp.State)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(nil, companyerrors.ErrCompanyNotFound)

		_, err := service.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, err := service.GetByID(ctx, "comp-123")
		assert.ErrorIs(t, err, companyerrors.ErrInvalidCompanyID)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success Update Name And State", func(t *testing.T) {
		id := uuid.New()
		mockComp := &company.Company{ID: id, Name: "Old Name", Email: "hr@acme.in", IsActive: true}
		state := " Maharashtra "

		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(mockComp, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *company.Company) error {
			assert.Equal(t, "New Name", c.Name)
			assert.Equal(t, "Maharashtra", c.State)
			assert.Equal(t, "hr@acme.in", c.Email)
			return nil
		})

		resp, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Name: "New Name", State: &state})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("Lowercases Email", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(&company.Company{ID: id, Name: "Acme"}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{Email: "HR@Acme.IN"})

		assert.NoError(t, err)
		assert.Equal(t, "hr@acme.in", resp.Email)
	})

	t.Run("Sets Letterhead", func(t *testing.T) {
		id := uuid.New()
		city, pin := "Bengaluru", " 560001 "
		signatory, title := "Meera Iyer", "Head of People"

		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(&company.Company{ID: id, Name: "Acme", State: "Karnataka"}, nil)
		mockRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, c *company.Company) error {
			assert.Equal(t, "Bengaluru, Karnataka 560001", c.PostalLine())
			return nil
		})

		resp, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{
			City: &city, PinCode: &pin, OfferSignatoryName: &signatory, OfferSignatoryTitle: &title,
		})

		assert.NoError(t, err)
		assert.Equal(t, "560001", resp.PinCode)
		assert.Equal(t, "Meera Iyer", resp.OfferSignatoryName)
	})

	t.Run("Rejects Bad PIN Code", func(t *testing.T) {
		id := uuid.New()
		pin := "012345"
		mockRepo.EXPECT().GetByID(ctx, id.String()).Return(&company.Company{ID: id, Name: "Acme"}, nil)

		_, err := service.Update(ctx, id.String(), company.UpdateCompanyRequest{PinCode: &pin})

		assert.ErrorIs(t, err, companyerrors.ErrInvalidPinCode)
	})
}

func TestCompany_PostalLine(t *testing.T) {
	assert.Equal(t, "", (&company.Company{}).PostalLine())
	assert.Equal(t, "Pune", (&company.Company{City: "Pune"}).PostalLine())
	assert.Equal(t, "411001", (&company.Company{PinCode: "411001"}).PostalLine())
	assert.Equal(t, "Pune, Maharashtra 411001", (&company.Company{City: "Pune", State: "Maharashtra", PinCode: "411001"}).PostalLine())

	assert.True(t, company.ValidPinCode("110001"))
	assert.False(t, company.ValidPinCode("11001"))
	assert.False(t, company.ValidPinCode("ABC123"))
}

func TestService_UpsertRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Normalises GSTIN", func(t *testing.T) {
		mockRepo.EXPECT().UpsertRegistration(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, reg *company.CompanyRegistration) error {
			assert.Equal(t, companyID, reg.CompanyID)
			assert.Equal(t, company.RegistrationTypeGSTIN, reg.Type)
			assert.Equal(t, "29ABCDE1234F1Z5", reg.Number)
			return nil
		})

		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   "gstin",
			Number: " 29abcde1234f1z5 ",
		})
		assert.NoError(t, err)
	})

	t.Run("Rejects Malformed PAN", func(t *testing.T) {
		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   company.RegistrationTypePAN,
			Number: "ABCDE12345",
		})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidRegistrationNumber)
	})

	t.Run("Rejects Unknown Type", func(t *testing.T) {
		err := service.UpsertRegistration(ctx, companyID.String(), company.UpsertCompanyRegistrationRequest{
			Type:   "NPWP",
			Number: "01.234.567.8-901.000",
		})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidRegistrationType)
	})
}

func TestService_ListAndDeleteRegistrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMock.NewMockRepository(ctrl)
	service := company.NewService(mockRepo)
	ctx := context.Background()
	companyID := uuid.New().String()

	mockRepo.EXPECT().ListRegistrations(ctx, companyID).Return([]company.CompanyRegistration{
		{ID: uuid.New(), Type: company.RegistrationTypeCIN, Number: "U72200KA2015PTC081234"},
		{ID: uuid.New(), Type: company.RegistrationTypeTAN, Number: "BLRA12345B"},
	}, nil)

	regs, err := service.ListRegistrations(ctx, companyID)
	assert.NoError(t, err)
	assert.Len(t, regs, 2)
	assert.Equal(t, company.RegistrationTypeCIN, regs[0].Type)

	mockRepo.EXPECT().DeleteRegistration(ctx, companyID, company.RegistrationTypeTAN).Return(companyerrors.ErrRegistrationNotFound)
	err = service.DeleteRegistration(ctx, companyID, "tan")
	assert.ErrorIs(t, err, companyerrors.ErrRegistrationNotFound)
}

func TestRegistrationType_ValidNumber(t *testing.T) {
	cases := []struct {
		regType company.RegistrationType
		number  string
		valid   bool
	}{
		{company.RegistrationTypeGSTIN, "27AAPFU0939F1ZV", true},
		{company.RegistrationTypeGSTIN, "27AAPFU0939F1AV", false},
		{company.RegistrationTypePAN, "AAPFU0939F", true},
		{company.RegistrationTypePAN, "AAPF0939F", false},
		{company.RegistrationTypeCIN, "L17110MH1973PLC019786", true},
		{company.RegistrationTypeTAN, "MUMA12345B", true},
		{company.RegistrationTypeTAN, "MUM123456B", false},
		{"EIN", "12-3456789", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.regType.ValidNumber(tc.number), "%s %s", tc.regType, tc.number)
	}
}
