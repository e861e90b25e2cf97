package visiting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/infrastructure/repository/mocks"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	geocodingmocks "github.com/vfg2006/visita360-api/internal/usecases/geocoding/mocks"
	"github.com/vfg2006/visita360-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context) ([]domain.Notification, error) {
	f.calls++
	return nil, f.err
}

type deps struct {
	visitRepo    *mocks.MockVisitRepository
	followUpRepo *mocks.MockFollowUpRepository
	geocoder     *geocodingmocks.MockGeocodingService
	refresher    *fakeRefresher
}

func newService(t *testing.T) (VisitingService, *deps) {
	ctrl := gomock.NewController(t)

	d := &deps{
		visitRepo:    mocks.NewMockVisitRepository(ctrl),
		followUpRepo: mocks.NewMockFollowUpRepository(ctrl),
		geocoder:     geocodingmocks.NewMockGeocodingService(ctrl),
		refresher:    &fakeRefresher{},
	}

	cfg := &config.Config{Seller: config.Seller{Name: "Jhone"}}
	return NewVisitService(cfg, d.visitRepo, d.followUpRepo, d.geocoder, d.refresher), d
}

func validVisitRequest() *domain.CreateVisitRequest {
	return &domain.CreateVisitRequest{
		Date:           "2024-01-01",
		Address:        "Rua A, 100",
		Company:        "Construtora Alfa",
		Segment:        domain.SegmentContractors,
		Responsible:    domain.ResponsibleCivilEngineer,
		Stage:          domain.StageInitial,
		Classification: domain.ClassificationStrong,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func codeOf(t *testing.T, err error) string {
	var visitErr *VisitError
	require.True(t, errors.As(err, &visitErr), "esperado VisitError, obtido %v", err)
	return visitErr.Code
}

func TestCreateVisit(t *testing.T) {
	tests := []struct {
		name     string
		request  func() *domain.CreateVisitRequest
		setup    func(d *deps)
		validate func(t *testing.T, response *domain.CreatedResponse, err error, d *deps)
	}{
		{
			name:    "geocodifica e arredonda coordenadas",
			request: validVisitRequest,
			setup: func(d *deps) {
				d.geocoder.EXPECT().
					Geocode(gomock.Any(), "Rua A, 100").
					Return(&domain.GeocodeResult{Lat: -23.5505199123, Lng: -46.6333094987}, nil)
				d.visitRepo.EXPECT().
					CreateVisit(gomock.Any()).
					DoAndReturn(func(visit *domain.Visit) (int64, error) {
						assert.Equal(t, -23.55052, *visit.Lat)
						assert.Equal(t, -46.633309, *visit.Lng)
						assert.Equal(t, "Jhone", visit.Salesperson)
						assert.Equal(t, []string{}, visit.Photos)
						return 42, nil
					})
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, int64(42), response.ID)
				assert.Empty(t, response.GeocodeError)
				assert.Equal(t, 1, d.refresher.calls)
			},
		},
		{
			name:    "falha de geocodificação não impede o cadastro",
			request: validVisitRequest,
			setup: func(d *deps) {
				d.geocoder.EXPECT().
					Geocode(gomock.Any(), gomock.Any()).
					Return(nil, geocoding.ErrAddressNotFound)
				d.visitRepo.EXPECT().
					CreateVisit(gomock.Any()).
					DoAndReturn(func(visit *domain.Visit) (int64, error) {
						assert.Nil(t, visit.Lat)
						assert.Nil(t, visit.Lng)
						return 7, nil
					})
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), response.ID)
				assert.Equal(t, geocoding.ErrAddressNotFound.Error(), response.GeocodeError)
			},
		},
		{
			name: "coordenadas informadas vão para o cache",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Lat = floatPtr(-22.9)
				req.Lng = floatPtr(-43.2)
				req.Salesperson = "Maria"
				return req
			},
			setup: func(d *deps) {
				d.geocoder.EXPECT().Remember("Rua A, 100", -22.9, -43.2).Return(nil)
				d.visitRepo.EXPECT().
					CreateVisit(gomock.Any()).
					DoAndReturn(func(visit *domain.Visit) (int64, error) {
						assert.Equal(t, "Maria", visit.Salesperson)
						return 1, nil
					})
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, -22.9, *response.Visit.Lat)
			},
		},
		{
			name: "segmento inválido",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Segment = "Indústria"
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrInvalidEnum)
				assert.Equal(t, apiErrors.ErrInvalidEnum, codeOf(t, err))
				assert.Zero(t, d.refresher.calls)
			},
		},
		{
			name: "empresa obrigatória",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Company = "  "
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrCompanyRequired)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, codeOf(t, err))
			},
		},
		{
			name: "data fora do formato",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Date = "01/01/2024"
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name: "só latitude",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Lat = floatPtr(-10)
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrCoordinatesIncomplete)
				assert.Equal(t, apiErrors.ErrInvalidCoordinates, codeOf(t, err))
			},
		},
		{
			name: "latitude fora da faixa",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Lat = floatPtr(-91)
				req.Lng = floatPtr(0)
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrInvalidCoordinates)
			},
		},
		{
			name: "fotos demais",
			request: func() *domain.CreateVisitRequest {
				req := validVisitRequest()
				req.Photos = []string{"1", "2", "3", "4", "5", "6", "7"}
				return req
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrTooManyPhotos)
			},
		},
		{
			name:    "erro no banco",
			request: validVisitRequest,
			setup: func(d *deps) {
				d.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(nil, geocoding.ErrAddressNotFound)
				d.visitRepo.EXPECT().CreateVisit(gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, codeOf(t, err))
				assert.Zero(t, d.refresher.calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			response, err := service.CreateVisit(context.Background(), tt.request())
			tt.validate(t, response, err, d)
		})
	}
}

func TestUpdateVisit(t *testing.T) {
	company := "Alfa Engenharia"

	t.Run("atualiza e recarrega", func(t *testing.T) {
		service, d := newService(t)
		req := &domain.UpdateVisitRequest{ID: 3, Company: &company}

		d.visitRepo.EXPECT().UpdateVisit(req).Return(nil)
		d.visitRepo.EXPECT().GetVisitByID(int64(3)).Return(&domain.Visit{ID: 3, Company: company}, nil)

		visit, err := service.UpdateVisit(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, company, visit.Company)
		assert.Equal(t, 1, d.refresher.calls)
	})

	t.Run("visita inexistente", func(t *testing.T) {
		service, d := newService(t)
		req := &domain.UpdateVisitRequest{ID: 99, Company: &company}

		d.visitRepo.EXPECT().UpdateVisit(req).Return(repository.ErrNotFound)

		_, err := service.UpdateVisit(context.Background(), req)

		assert.ErrorIs(t, err, ErrVisitNotFound)
		assert.Equal(t, apiErrors.ErrVisitNotFound, codeOf(t, err))
	})

	t.Run("sem campos", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.UpdateVisit(context.Background(), &domain.UpdateVisitRequest{ID: 1})

		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("coordenadas atualizadas vão para o cache", func(t *testing.T) {
		service, d := newService(t)
		req := &domain.UpdateVisitRequest{ID: 3, Lat: floatPtr(-1), Lng: floatPtr(-2)}

		d.visitRepo.EXPECT().UpdateVisit(req).Return(nil)
		d.visitRepo.EXPECT().GetVisitByID(int64(3)).Return(&domain.Visit{ID: 3, Address: "Rua B"}, nil)
		d.geocoder.EXPECT().Remember("Rua B", -1.0, -2.0).Return(nil)

		_, err := service.UpdateVisit(context.Background(), req)

		require.NoError(t, err)
	})
}

func TestDeleteVisit(t *testing.T) {
	service, d := newService(t)

	d.visitRepo.EXPECT().DeleteVisit(int64(5)).Return(nil)
	d.visitRepo.EXPECT().DeleteVisit(int64(6)).Return(repository.ErrNotFound)

	require.NoError(t, service.DeleteVisit(context.Background(), 5))
	assert.ErrorIs(t, service.DeleteVisit(context.Background(), 6), ErrVisitNotFound)
	assert.ErrorIs(t, service.DeleteVisit(context.Background(), 0), ErrVisitIDRequired)
	assert.Equal(t, 1, d.refresher.calls)
}

func TestCreateFollowUp(t *testing.T) {
	value := 1500.0
	negative := -1.0
	reason := domain.LossReasonLowerPrice
	empty := domain.LossReason("")

	tests := []struct {
		name     string
		request  *domain.CreateFollowUpRequest
		setup    func(d *deps)
		validate func(t *testing.T, response *domain.CreatedResponse, err error, d *deps)
	}{
		{
			name:    "pedido fechado",
			request: &domain.CreateFollowUpRequest{VisitID: 1, Date: "2024-01-05", Status: domain.FollowUpStatusDealClosed, Value: &value, LossReason: &empty},
			setup: func(d *deps) {
				d.visitRepo.EXPECT().GetVisitByID(int64(1)).Return(&domain.Visit{ID: 1}, nil)
				d.followUpRepo.EXPECT().
					CreateFollowUp(gomock.Any()).
					DoAndReturn(func(followUp *domain.FollowUp) (int64, error) {
						assert.Nil(t, followUp.LossReason)
						assert.Equal(t, 1500.0, *followUp.Value)
						return 10, nil
					})
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				require.NoError(t, err)
				assert.Equal(t, int64(10), response.ID)
				assert.Equal(t, "Follow-up criado com sucesso", response.Message)
				assert.Equal(t, 1, d.refresher.calls)
			},
		},
		{
			name:    "visita inexistente",
			request: &domain.CreateFollowUpRequest{VisitID: 9, Date: "2024-01-05", Status: domain.FollowUpStatusReturned},
			setup: func(d *deps) {
				d.visitRepo.EXPECT().GetVisitByID(int64(9)).Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrVisitNotFound)
			},
		},
		{
			name:    "motivo de perda em pedido fechado",
			request: &domain.CreateFollowUpRequest{VisitID: 1, Date: "2024-01-05", Status: domain.FollowUpStatusDealClosed, LossReason: &reason},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrLossReasonOnClosed)
			},
		},
		{
			name:    "status inválido",
			request: &domain.CreateFollowUpRequest{VisitID: 1, Date: "2024-01-05", Status: "Talvez"},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrInvalidEnum)
			},
		},
		{
			name:    "valor negativo",
			request: &domain.CreateFollowUpRequest{VisitID: 1, Date: "2024-01-05", Status: domain.FollowUpStatusQuote, Value: &negative},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrNegativeValue)
			},
		},
		{
			name:    "sem visita",
			request: &domain.CreateFollowUpRequest{Date: "2024-01-05", Status: domain.FollowUpStatusQuote},
			validate: func(t *testing.T, response *domain.CreatedResponse, err error, d *deps) {
				assert.ErrorIs(t, err, ErrVisitIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			response, err := service.CreateFollowUp(context.Background(), tt.request)
			tt.validate(t, response, err, d)
		})
	}
}

func TestListFollowUps(t *testing.T) {
	service, d := newService(t)
	visitID := int64(2)

	d.followUpRepo.EXPECT().ListFollowUps().Return([]*domain.FollowUp{{ID: 1}, {ID: 2}}, nil)
	d.followUpRepo.EXPECT().ListFollowUpsByVisitID(visitID).Return([]*domain.FollowUp{{ID: 2, VisitID: 2}}, nil)

	all, err := service.ListFollowUps(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.ListFollowUps(&visitID)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestListMapPoints(t *testing.T) {
	service, d := newService(t)

	d.visitRepo.EXPECT().ListVisits().Return([]*domain.Visit{
		{ID: 1, Company: "Com coordenadas", Lat: floatPtr(-23.5), Lng: floatPtr(-46.6)},
		{ID: 2, Company: "Sem coordenadas"},
		{ID: 3, Company: "Coordenadas inválidas", Lat: floatPtr(120), Lng: floatPtr(0)},
	}, nil)

	points, err := service.ListMapPoints()

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, int64(1), points[0].VisitID)
}

func TestResetAll(t *testing.T) {
	service, d := newService(t)
	d.refresher.err = errors.New("falha na reavaliação")

	d.visitRepo.EXPECT().ResetAll().Return(nil)

	require.NoError(t, service.ResetAll(context.Background()))
	assert.Equal(t, 1, d.refresher.calls)
}

func TestListEnums(t *testing.T) {
	service, _ := newService(t)

	enums := service.ListEnums()

	assert.Contains(t, enums.Segments, domain.SegmentCondominium)
	assert.Len(t, enums.FollowUpStatus, 5)
}
