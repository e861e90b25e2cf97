package notifying

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
)

type NotificationService interface {
	Refresh(ctx context.Context) ([]domain.Notification, error)
	List() domain.NotificationsResponse
	MarkRead(id string) error
	MarkAllRead()
	Dismiss(id string) error
	ClearAll()
	Activate(id string) error
	RequestPermission(ctx context.Context) (domain.NotificationPermission, error)
	Initialize(ctx context.Context)
}

type Option func(*Service)

// WithClock substitui o relógio usado na reavaliação
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithActionHandler define o que acontece quando a ação de uma notificação
// é executada
func WithActionHandler(handler func(domain.Notification)) Option {
	return func(s *Service) {
		s.onAction = handler
	}
}

// Service é o dono do conjunto de notificações: carrega visitas e
// follow-ups, recalcula as candidatas e reconcilia com o Store. Uma
// reavaliação por vez.
type Service struct {
	VisitRepository    repository.VisitRepository
	FollowUpRepository repository.FollowUpRepository
	generator          *Generator
	store              *Store
	now                func() time.Time
	onAction           func(domain.Notification)

	refreshMu sync.Mutex
}

func NewService(
	cfg *config.Config,
	visitRepository repository.VisitRepository,
	followUpRepository repository.FollowUpRepository,
	notifier Notifier,
	opts ...Option,
) *Service {
	s := &Service{
		VisitRepository:    visitRepository,
		FollowUpRepository: followUpRepository,
		generator:          NewGenerator(cfg.Notifications.FollowUpPrazoDays, cfg.Notifications.IDWindow),
		store: NewStore(notifier, StoreOptions{
			DeliveryEnabled: cfg.Notifications.DeliveryEnabled,
			SoundEnabled:    cfg.Notifications.SoundEnabled,
		}),
		now:      time.Now,
		onAction: logAction,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Refresh recalcula as notificações e retorna as recém-criadas
func (s *Service) Refresh(ctx context.Context) ([]domain.Notification, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	visits, err := s.VisitRepository.ListVisits()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar visitas: %w", err)
	}

	followUps, err := s.FollowUpRepository.ListFollowUps()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar follow-ups: %w", err)
	}

	candidates := s.generator.Generate(visits, followUps, s.now())
	for i := range candidates {
		notification := candidates[i]
		candidates[i].ActionCallback = func() {
			s.onAction(notification)
		}
	}

	created := s.store.Reconcile(ctx, candidates)

	logrus.WithFields(logrus.Fields{
		"notification_candidates": len(candidates),
		"notification_new":        len(created),
	}).Debug("Notificações reavaliadas")

	return created, nil
}

func (s *Service) List() domain.NotificationsResponse {
	return domain.NotificationsResponse{
		Notifications: s.store.List(),
		Stats:         s.store.Stats(),
		Permission:    s.store.Permission(),
	}
}

func (s *Service) MarkRead(id string) error {
	return s.store.MarkRead(id)
}

func (s *Service) MarkAllRead() {
	s.store.MarkAllRead()
}

func (s *Service) Dismiss(id string) error {
	return s.store.Dismiss(id)
}

func (s *Service) ClearAll() {
	s.store.ClearAll()
}

func (s *Service) Activate(id string) error {
	return s.store.Activate(id)
}

func (s *Service) RequestPermission(ctx context.Context) (domain.NotificationPermission, error) {
	return s.store.RequestPermission(ctx)
}

func (s *Service) Initialize(ctx context.Context) {
	s.store.Initialize(ctx)
}

func logAction(notification domain.Notification) {
	fields := logrus.Fields{
		"notification_id":     notification.ID,
		"notification_action": notification.ActionLabel,
	}
	if notification.VisitID != nil {
		fields["visit_id"] = *notification.VisitID
	}

	logrus.WithFields(fields).Info("Ação de notificação executada")
}
