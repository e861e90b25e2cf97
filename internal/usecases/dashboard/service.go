// Package dashboard agrega visitas e follow-ups nos indicadores de vendas
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/followup"
	"github.com/vfg2006/visita360-api/pkg/utils"
)

// Quantidade de clientes no ranking por valor fechado
const topClientsLimit = 10

type Dashboarder interface {
	GetDashboard(filters domain.DashboardFilters) (*domain.DashboardResponse, error)
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	VisitRepository    repository.VisitRepository
	FollowUpRepository repository.FollowUpRepository
	prazoDays          int
	now                func() time.Time
}

func NewService(
	cfg *config.Config,
	visitRepository repository.VisitRepository,
	followUpRepository repository.FollowUpRepository,
	opts ...Option,
) *Service {
	s := &Service{
		VisitRepository:    visitRepository,
		FollowUpRepository: followUpRepository,
		prazoDays:          cfg.Notifications.FollowUpPrazoDays,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetDashboard carrega os registros e calcula KPIs e séries para os filtros
func (s *Service) GetDashboard(filters domain.DashboardFilters) (*domain.DashboardResponse, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	visits, err := s.VisitRepository.ListVisits()
	if err != nil {
		return nil, errors.Wrap(ErrLoadData, err.Error())
	}

	followUps, err := s.FollowUpRepository.ListFollowUps()
	if err != nil {
		return nil, errors.Wrap(ErrLoadData, err.Error())
	}

	response := Build(visits, followUps, filters, s.prazoDays, s.now())

	logrus.WithFields(logrus.Fields{
		"dashboard_visits":     response.KPIs.TotalVisits,
		"dashboard_closed":     response.KPIs.ClosedFollowUps,
		"dashboard_conversion": response.KPIs.ConversionRate,
	}).Debug("Dashboard calculado")

	return response, nil
}

// ValidateFilters confere formato das datas e enumerações informadas
func ValidateFilters(filters domain.DashboardFilters) error {
	start, err := utils.ParseDate(filters.StartDate)
	if err != nil {
		return &FilterError{Err: ErrInvalidFilterDate, Field: "dataIni", Value: filters.StartDate}
	}

	end, err := utils.ParseDate(filters.EndDate)
	if err != nil {
		return &FilterError{Err: ErrInvalidFilterDate, Field: "dataFim", Value: filters.EndDate}
	}

	if start != nil && end != nil && start.After(*end) {
		return &FilterError{Err: ErrInvalidFilterRange, Field: "dataIni", Value: filters.StartDate}
	}

	if filters.Segment != nil && !filters.Segment.IsValid() {
		return &FilterError{Err: ErrInvalidFilterEnum, Field: "segmento", Value: string(*filters.Segment)}
	}

	if filters.Stage != nil && !filters.Stage.IsValid() {
		return &FilterError{Err: ErrInvalidFilterEnum, Field: "estagio", Value: string(*filters.Stage)}
	}

	return nil
}

// Build aplica os filtros às visitas e agrega apenas os follow-ups das
// visitas que restaram
func Build(
	visits []*domain.Visit,
	followUps []*domain.FollowUp,
	filters domain.DashboardFilters,
	prazoDays int,
	now time.Time,
) *domain.DashboardResponse {
	filteredVisits := FilterVisits(visits, filters)

	kept := make(map[int64]*domain.Visit, len(filteredVisits))
	for _, visit := range filteredVisits {
		kept[visit.ID] = visit
	}

	filteredFollowUps := make([]*domain.FollowUp, 0, len(followUps))
	closed := make([]*domain.FollowUp, 0)
	for _, followUp := range followUps {
		if followUp == nil {
			continue
		}
		if _, ok := kept[followUp.VisitID]; !ok {
			continue
		}

		filteredFollowUps = append(filteredFollowUps, followUp)
		if followUp.IsClosed() {
			closed = append(closed, followUp)
		}
	}

	return &domain.DashboardResponse{
		Filters:     filters,
		KPIs:        computeKPIs(filteredVisits, filteredFollowUps, closed, prazoDays, now),
		LossReasons: countLossReasons(filteredFollowUps),
		Funnel:      computeFunnel(filteredVisits, filteredFollowUps, closed),
		BySegment: countBy(filteredVisits, func(visit *domain.Visit) string {
			return string(visit.Segment)
		}),
		ByStage: countBy(filteredVisits, func(visit *domain.Visit) string {
			return string(visit.Stage)
		}),
		TopClients: topClients(closed, kept),
	}
}

// FilterVisits compara as datas como texto YYYY-MM-DD, com limites inclusivos
func FilterVisits(visits []*domain.Visit, filters domain.DashboardFilters) []*domain.Visit {
	filtered := make([]*domain.Visit, 0, len(visits))

	for _, visit := range visits {
		if visit == nil {
			continue
		}
		if filters.StartDate != "" && visit.Date < filters.StartDate {
			continue
		}
		if filters.EndDate != "" && visit.Date > filters.EndDate {
			continue
		}
		if filters.Segment != nil && visit.Segment != *filters.Segment {
			continue
		}
		if filters.Stage != nil && visit.Stage != *filters.Stage {
			continue
		}

		filtered = append(filtered, visit)
	}

	return filtered
}

func computeKPIs(
	visits []*domain.Visit,
	followUps []*domain.FollowUp,
	closed []*domain.FollowUp,
	prazoDays int,
	now time.Time,
) domain.DashboardKPIs {
	kpis := domain.DashboardKPIs{
		TotalVisits:     len(visits),
		ClosedFollowUps: len(closed),
	}

	var totalSold float64
	for _, followUp := range closed {
		if followUp.Value != nil {
			totalSold += *followUp.Value
		}
	}
	kpis.TotalSold = utils.RoundWithTwoDecimalPlace(totalSold)

	if len(visits) > 0 {
		closedVisits := distinctVisits(closed)
		kpis.ConversionRate = int(math.Round(float64(closedVisits) / float64(len(visits)) * 100))
	}

	for _, derivation := range followup.DeriveAll(visits, followUps, now) {
		if derivation.ElapsedDays() > float64(prazoDays) && !derivation.IsClosed {
			kpis.PendingFollowUps++
		}
	}

	return kpis
}

func countLossReasons(followUps []*domain.FollowUp) []domain.LabelCount {
	counts := make(map[domain.LossReason]int, len(domain.ValidLossReasons))
	for _, followUp := range followUps {
		if followUp.LossReason != nil {
			counts[*followUp.LossReason]++
		}
	}

	series := make([]domain.LabelCount, 0, len(domain.ValidLossReasons))
	for _, reason := range domain.ValidLossReasons {
		series = append(series, domain.LabelCount{Label: string(reason), Count: counts[reason]})
	}

	return series
}

func computeFunnel(visits []*domain.Visit, followUps []*domain.FollowUp, closed []*domain.FollowUp) domain.Funnel {
	quoted := make([]*domain.FollowUp, 0)
	for _, followUp := range followUps {
		if followUp.Status == domain.FollowUpStatusQuote || followUp.Status == domain.FollowUpStatusPriceInquiry {
			quoted = append(quoted, followUp)
		}
	}

	return domain.Funnel{
		Visited:   len(visits),
		Contacted: distinctVisits(followUps),
		Quoted:    distinctVisits(quoted),
		Closed:    distinctVisits(closed),
	}
}

// countBy conta as visitas por rótulo na ordem em que cada rótulo aparece
func countBy(visits []*domain.Visit, label func(*domain.Visit) string) []domain.LabelCount {
	index := make(map[string]int)
	series := make([]domain.LabelCount, 0)

	for _, visit := range visits {
		key := label(visit)
		position, ok := index[key]
		if !ok {
			position = len(series)
			index[key] = position
			series = append(series, domain.LabelCount{Label: key})
		}
		series[position].Count++
	}

	return series
}

// topClients soma o valor fechado por empresa. Empates mantêm a ordem de
// aparição.
func topClients(closed []*domain.FollowUp, visits map[int64]*domain.Visit) []domain.ClientRevenue {
	index := make(map[string]int)
	revenue := make([]domain.ClientRevenue, 0)

	for _, followUp := range closed {
		company := fmt.Sprintf("#%d", followUp.VisitID)
		if visit, ok := visits[followUp.VisitID]; ok && visit.Company != "" {
			company = visit.Company
		}

		position, ok := index[company]
		if !ok {
			position = len(revenue)
			index[company] = position
			revenue = append(revenue, domain.ClientRevenue{Company: company})
		}
		if followUp.Value != nil {
			revenue[position].Value += *followUp.Value
		}
	}

	sort.SliceStable(revenue, func(i, j int) bool {
		return revenue[i].Value > revenue[j].Value
	})

	if len(revenue) > topClientsLimit {
		revenue = revenue[:topClientsLimit]
	}

	for i := range revenue {
		revenue[i].Value = utils.RoundWithTwoDecimalPlace(revenue[i].Value)
	}

	return revenue
}

func distinctVisits(followUps []*domain.FollowUp) int {
	seen := make(map[int64]struct{}, len(followUps))
	for _, followUp := range followUps {
		seen[followUp.VisitID] = struct{}{}
	}
	return len(seen)
}
