package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/infrastructure/repository/mocks"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

func value(v float64) *float64 {
	return &v
}

func fixtures() ([]*domain.Visit, []*domain.FollowUp) {
	noResponse := domain.LossReasonNoResponse

	visits := []*domain.Visit{
		{ID: 1, Date: "2024-01-01", Company: "Alfa", Segment: domain.SegmentContractors, Stage: domain.StageInitial},
		{ID: 2, Date: "2024-01-05", Company: "Beta", Segment: domain.SegmentEngineering, Stage: domain.StageFinal},
		{ID: 3, Date: "2024-01-10", Company: "", Segment: domain.SegmentContractors, Stage: domain.StageInitial},
		{ID: 4, Date: "2024-02-01", Company: "Delta", Segment: domain.SegmentArchitecture, Stage: domain.StageRenovation},
	}

	followUps := []*domain.FollowUp{
		{ID: 1, VisitID: 1, Date: "2024-01-03", Status: domain.FollowUpStatusQuote},
		{ID: 2, VisitID: 1, Date: "2024-01-08", Status: domain.FollowUpStatusDealClosed, Value: value(1000)},
		{ID: 3, VisitID: 2, Date: "2024-01-18", Status: domain.FollowUpStatusNoResponse, LossReason: &noResponse},
		{ID: 4, VisitID: 3, Date: "2024-01-12", Status: domain.FollowUpStatusDealClosed, Value: value(250.5)},
		{ID: 5, VisitID: 3, Date: "2024-01-15", Status: domain.FollowUpStatusPriceInquiry},
		{ID: 6, VisitID: 4, Date: "2024-02-02", Status: domain.FollowUpStatusDealClosed, Value: value(5000)},
	}

	return visits, followUps
}

func TestBuild(t *testing.T) {
	contractors := domain.SegmentContractors

	tests := []struct {
		name     string
		filters  domain.DashboardFilters
		validate func(t *testing.T, response *domain.DashboardResponse)
	}{
		{
			name: "sem filtros",
			validate: func(t *testing.T, response *domain.DashboardResponse) {
				assert.Equal(t, domain.DashboardKPIs{
					TotalVisits:      4,
					ClosedFollowUps:  3,
					TotalSold:        6250.5,
					ConversionRate:   75,
					PendingFollowUps: 1,
				}, response.KPIs)

				assert.Equal(t, domain.Funnel{Visited: 4, Contacted: 4, Quoted: 2, Closed: 3}, response.Funnel)

				assert.Equal(t, []domain.LabelCount{
					{Label: string(domain.SegmentContractors), Count: 2},
					{Label: string(domain.SegmentEngineering), Count: 1},
					{Label: string(domain.SegmentArchitecture), Count: 1},
				}, response.BySegment)

				assert.Equal(t, []domain.ClientRevenue{
					{Company: "Delta", Value: 5000},
					{Company: "Alfa", Value: 1000},
					{Company: "#3", Value: 250.5},
				}, response.TopClients)

				require.Len(t, response.LossReasons, len(domain.ValidLossReasons))
				assert.Equal(t, domain.LabelCount{Label: string(domain.LossReasonNoResponse), Count: 1}, response.LossReasons[1])
				assert.Zero(t, response.LossReasons[0].Count)
			},
		},
		{
			name:    "filtro por período e segmento",
			filters: domain.DashboardFilters{EndDate: "2024-01-31", Segment: &contractors},
			validate: func(t *testing.T, response *domain.DashboardResponse) {
				assert.Equal(t, 2, response.KPIs.TotalVisits)
				assert.Equal(t, 2, response.KPIs.ClosedFollowUps)
				assert.Equal(t, 1250.5, response.KPIs.TotalSold)
				assert.Equal(t, 100, response.KPIs.ConversionRate)
				assert.Equal(t, 1, response.KPIs.PendingFollowUps)
				assert.Equal(t, domain.Funnel{Visited: 2, Contacted: 2, Quoted: 2, Closed: 2}, response.Funnel)
				assert.Equal(t, []domain.LabelCount{{Label: string(domain.StageInitial), Count: 2}}, response.ByStage)
				assert.Equal(t, &contractors, response.Filters.Segment)
			},
		},
		{
			name:    "período sem visitas",
			filters: domain.DashboardFilters{StartDate: "2025-01-01"},
			validate: func(t *testing.T, response *domain.DashboardResponse) {
				assert.Zero(t, response.KPIs.TotalVisits)
				assert.Zero(t, response.KPIs.ConversionRate)
				assert.Empty(t, response.TopClients)
				assert.Empty(t, response.BySegment)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits, followUps := fixtures()
			tt.validate(t, Build(visits, followUps, tt.filters, 3, fixedNow))
		})
	}
}

func TestTopClientsLimit(t *testing.T) {
	visits := make(map[int64]*domain.Visit)
	closed := make([]*domain.FollowUp, 0)
	for i := int64(1); i <= 12; i++ {
		visits[i] = &domain.Visit{ID: i}
		closed = append(closed, &domain.FollowUp{VisitID: i, Status: domain.FollowUpStatusDealClosed, Value: value(float64(i))})
	}

	top := topClients(closed, visits)

	require.Len(t, top, topClientsLimit)
	assert.Equal(t, "#12", top[0].Company)
	assert.Equal(t, "#3", top[9].Company)
}

func TestValidateFilters(t *testing.T) {
	invalidStage := domain.Stage("Acabamento")

	tests := []struct {
		name    string
		filters domain.DashboardFilters
		err     error
	}{
		{name: "vazio"},
		{name: "período válido", filters: domain.DashboardFilters{StartDate: "2024-01-01", EndDate: "2024-01-31"}},
		{name: "data mal formatada", filters: domain.DashboardFilters{StartDate: "01/01/2024"}, err: ErrInvalidFilterDate},
		{name: "início depois do fim", filters: domain.DashboardFilters{StartDate: "2024-02-01", EndDate: "2024-01-01"}, err: ErrInvalidFilterRange},
		{name: "estágio inválido", filters: domain.DashboardFilters{Stage: &invalidStage}, err: ErrInvalidFilterEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilters(tt.filters)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	cfg := &config.Config{Notifications: config.Notifications{FollowUpPrazoDays: 3}}

	t.Run("carrega e agrega", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		visitRepo := mocks.NewMockVisitRepository(ctrl)
		followUpRepo := mocks.NewMockFollowUpRepository(ctrl)

		visits, followUps := fixtures()
		visitRepo.EXPECT().ListVisits().Return(visits, nil)
		followUpRepo.EXPECT().ListFollowUps().Return(followUps, nil)

		service := NewService(cfg, visitRepo, followUpRepo, WithClock(func() time.Time { return fixedNow }))
		response, err := service.GetDashboard(domain.DashboardFilters{})

		require.NoError(t, err)
		assert.Equal(t, 4, response.KPIs.TotalVisits)
	})

	t.Run("falha ao carregar visitas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		visitRepo := mocks.NewMockVisitRepository(ctrl)
		followUpRepo := mocks.NewMockFollowUpRepository(ctrl)

		visitRepo.EXPECT().ListVisits().Return(nil, errors.New("connection refused"))

		service := NewService(cfg, visitRepo, followUpRepo)
		_, err := service.GetDashboard(domain.DashboardFilters{})

		assert.ErrorIs(t, err, ErrLoadData)
	})

	t.Run("filtro inválido não consulta o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewService(cfg, mocks.NewMockVisitRepository(ctrl), mocks.NewMockFollowUpRepository(ctrl))

		_, err := service.GetDashboard(domain.DashboardFilters{EndDate: "ontem"})

		var filterErr *FilterError
		require.True(t, errors.As(err, &filterErr))
		assert.Equal(t, "dataFim", filterErr.Field)
	})
}
