package visiting

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/pkg/utils"
)

// Casas decimais mantidas nas coordenadas geocodificadas
const coordinatePrecision = 6

// NotificationRefresher reavalia as notificações após mudanças nos dados
type NotificationRefresher interface {
	Refresh(ctx context.Context) ([]domain.Notification, error)
}

type VisitingService interface {
	ListVisits() ([]*domain.Visit, error)
	GetVisit(id int64) (*domain.Visit, error)
	CreateVisit(ctx context.Context, req *domain.CreateVisitRequest) (*domain.CreatedResponse, error)
	UpdateVisit(ctx context.Context, req *domain.UpdateVisitRequest) (*domain.Visit, error)
	DeleteVisit(ctx context.Context, id int64) error
	ListFollowUps(visitID *int64) ([]*domain.FollowUp, error)
	CreateFollowUp(ctx context.Context, req *domain.CreateFollowUpRequest) (*domain.CreatedResponse, error)
	ResetAll(ctx context.Context) error
	ListEnums() domain.Enums
	ListMapPoints() ([]domain.MapPoint, error)
}

type VisitService struct {
	cfg                *config.Config
	VisitRepository    repository.VisitRepository
	FollowUpRepository repository.FollowUpRepository
	Geocoder           geocoding.GeocodingService
	Notifications      NotificationRefresher
}

func NewVisitService(
	cfg *config.Config,
	visitRepository repository.VisitRepository,
	followUpRepository repository.FollowUpRepository,
	geocoder geocoding.GeocodingService,
	notifications NotificationRefresher,
) VisitingService {
	return &VisitService{
		cfg:                cfg,
		VisitRepository:    visitRepository,
		FollowUpRepository: followUpRepository,
		Geocoder:           geocoder,
		Notifications:      notifications,
	}
}

func (s *VisitService) ListVisits() ([]*domain.Visit, error) {
	visits, err := s.VisitRepository.ListVisits()
	if err != nil {
		return nil, newDatabaseError(err)
	}
	return visits, nil
}

func (s *VisitService) GetVisit(id int64) (*domain.Visit, error) {
	if id <= 0 {
		return nil, newValidationError(ErrVisitIDRequired, "")
	}

	visit, err := s.VisitRepository.GetVisitByID(id)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	if visit == nil {
		return nil, newNotFoundError(id)
	}

	return visit, nil
}

// CreateVisit valida e grava a visita. Sem coordenadas o endereço é
// geocodificado; a falha da geocodificação não impede o cadastro.
func (s *VisitService) CreateVisit(ctx context.Context, req *domain.CreateVisitRequest) (*domain.CreatedResponse, error) {
	if err := validateCreateVisit(req); err != nil {
		return nil, err
	}

	visit := req.ToVisit()
	if visit.Salesperson == "" {
		visit.Salesperson = s.cfg.Seller.Name
	}

	response := &domain.CreatedResponse{Message: "Visita criada com sucesso"}

	if visit.HasCoordinates() {
		if err := s.Geocoder.Remember(visit.Address, *visit.Lat, *visit.Lng); err != nil {
			logrus.WithError(err).WithField("visit_address", visit.Address).Warn("Não foi possível guardar as coordenadas no cache")
		}
	} else {
		result, err := s.Geocoder.Geocode(ctx, visit.Address)
		if err != nil {
			response.GeocodeError = err.Error()
			logrus.WithError(err).WithField("visit_address", visit.Address).Warn("Visita cadastrada sem coordenadas")
		} else if result != nil {
			lat := utils.RoundTo(result.Lat, coordinatePrecision)
			lng := utils.RoundTo(result.Lng, coordinatePrecision)
			visit.Lat = &lat
			visit.Lng = &lng
		}
	}

	id, err := s.VisitRepository.CreateVisit(visit)
	if err != nil {
		return nil, newDatabaseError(err)
	}

	visit.ID = id
	response.ID = id
	response.Visit = visit

	logrus.WithFields(logrus.Fields{
		"visit_id":      id,
		"visit_company": visit.Company,
	}).Info("Visita cadastrada")

	s.refreshNotifications(ctx)
	return response, nil
}

func (s *VisitService) UpdateVisit(ctx context.Context, req *domain.UpdateVisitRequest) (*domain.Visit, error) {
	if err := validateUpdateVisit(req); err != nil {
		return nil, err
	}

	if err := s.VisitRepository.UpdateVisit(req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFoundError(req.ID)
		}
		return nil, newDatabaseError(err)
	}

	visit, err := s.GetVisit(req.ID)
	if err != nil {
		return nil, err
	}

	if req.Lat != nil && req.Lng != nil {
		if err := s.Geocoder.Remember(visit.Address, *req.Lat, *req.Lng); err != nil {
			logrus.WithError(err).WithField("visit_id", req.ID).Warn("Não foi possível guardar as coordenadas no cache")
		}
	}

	s.refreshNotifications(ctx)
	return visit, nil
}

// DeleteVisit exclui a visita junto com seus follow-ups
func (s *VisitService) DeleteVisit(ctx context.Context, id int64) error {
	if id <= 0 {
		return newValidationError(ErrVisitIDRequired, "")
	}

	if err := s.VisitRepository.DeleteVisit(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(id)
		}
		return newDatabaseError(err)
	}

	logrus.WithField("visit_id", id).Info("Visita excluída")

	s.refreshNotifications(ctx)
	return nil
}

func (s *VisitService) ListFollowUps(visitID *int64) ([]*domain.FollowUp, error) {
	var (
		followUps []*domain.FollowUp
		err       error
	)

	if visitID != nil {
		followUps, err = s.FollowUpRepository.ListFollowUpsByVisitID(*visitID)
	} else {
		followUps, err = s.FollowUpRepository.ListFollowUps()
	}
	if err != nil {
		return nil, newDatabaseError(err)
	}

	return followUps, nil
}

// CreateFollowUp grava o follow-up de uma visita existente
func (s *VisitService) CreateFollowUp(ctx context.Context, req *domain.CreateFollowUpRequest) (*domain.CreatedResponse, error) {
	followUp := req.ToFollowUp()
	if err := validateFollowUp(followUp); err != nil {
		return nil, err
	}

	visit, err := s.VisitRepository.GetVisitByID(followUp.VisitID)
	if err != nil {
		return nil, newDatabaseError(err)
	}
	if visit == nil {
		return nil, newNotFoundError(followUp.VisitID)
	}

	id, err := s.FollowUpRepository.CreateFollowUp(followUp)
	if err != nil {
		return nil, newDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{
		"visit_id":        followUp.VisitID,
		"followup_id":     id,
		"followup_status": followUp.Status,
	}).Info("Follow-up cadastrado")

	s.refreshNotifications(ctx)
	return &domain.CreatedResponse{ID: id, Message: "Follow-up criado com sucesso"}, nil
}

// ResetAll apaga todos os dados (uso em desenvolvimento)
func (s *VisitService) ResetAll(ctx context.Context) error {
	if err := s.VisitRepository.ResetAll(); err != nil {
		return newDatabaseError(err)
	}

	logrus.Warn("Dados de visitas e follow-ups resetados")

	s.refreshNotifications(ctx)
	return nil
}

func (s *VisitService) ListEnums() domain.Enums {
	return domain.AllEnums()
}

// ListMapPoints retorna as visitas com coordenadas válidas
func (s *VisitService) ListMapPoints() ([]domain.MapPoint, error) {
	visits, err := s.ListVisits()
	if err != nil {
		return nil, err
	}

	points := make([]domain.MapPoint, 0, len(visits))
	for _, visit := range visits {
		if !visit.HasCoordinates() || !geocoding.ValidateCoordinates(*visit.Lat, *visit.Lng) {
			continue
		}

		points = append(points, domain.MapPoint{
			VisitID:        visit.ID,
			Company:        visit.Company,
			Address:        visit.Address,
			Lat:            *visit.Lat,
			Lng:            *visit.Lng,
			Classification: visit.Classification,
			Stage:          visit.Stage,
		})
	}

	return points, nil
}

func (s *VisitService) refreshNotifications(ctx context.Context) {
	if s.Notifications == nil {
		return
	}

	if _, err := s.Notifications.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Falha ao reavaliar notificações após alteração")
	}
}
