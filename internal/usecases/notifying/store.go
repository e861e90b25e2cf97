package notifying

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/pkg/metrics"
)

// Notificações não urgentes somem sozinhas após este intervalo
const autoDismissAfter = 5 * time.Second

// Notifier é o canal externo de entrega (alerta de desktop, webhook...)
type Notifier interface {
	Notify(ctx context.Context, delivery domain.Delivery) error
	RequestPermission(ctx context.Context) (domain.NotificationPermission, error)
}

type StoreOptions struct {
	DeliveryEnabled bool
	SoundEnabled    bool
}

// Store mantém o conjunto atual de notificações em memória. A cada
// reavaliação o conjunto é substituído pela lista candidata; IDs que já
// existiam não são entregues de novo e mantêm o estado de leitura. IDs
// dispensados continuam suprimidos enquanto forem reemitidos.
type Store struct {
	notifier Notifier
	options  StoreOptions

	mu         sync.Mutex
	items      []domain.Notification
	dismissed  map[string]struct{}
	permission domain.NotificationPermission
}

func NewStore(notifier Notifier, options StoreOptions) *Store {
	return &Store{
		notifier:   notifier,
		options:    options,
		items:      make([]domain.Notification, 0),
		dismissed:  make(map[string]struct{}),
		permission: domain.PermissionDefault,
	}
}

// Reconcile substitui o conjunto pelas candidatas e retorna as que são novas
func (s *Store) Reconcile(ctx context.Context, candidates []domain.Notification) []domain.Notification {
	s.mu.Lock()

	existing := make(map[string]domain.Notification, len(s.items))
	for _, item := range s.items {
		existing[item.ID] = item
	}

	seen := make(map[string]struct{}, len(candidates))
	next := make([]domain.Notification, 0, len(candidates))
	created := make([]domain.Notification, 0)
	stillDismissed := make(map[string]struct{})

	for _, candidate := range candidates {
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		seen[candidate.ID] = struct{}{}

		if _, ok := s.dismissed[candidate.ID]; ok {
			stillDismissed[candidate.ID] = struct{}{}
			continue
		}

		if previous, ok := existing[candidate.ID]; ok {
			candidate.IsRead = previous.IsRead
			candidate.CreatedAt = previous.CreatedAt
			next = append(next, candidate)
			continue
		}

		candidate.IsRead = false
		next = append(next, candidate)
		created = append(created, candidate)
	}

	SortNotifications(next)
	s.items = next
	s.dismissed = stillDismissed
	permission := s.permission
	total := len(next)

	s.mu.Unlock()

	metrics.NotificationsActive.Set(float64(total))

	for _, notification := range created {
		metrics.NotificationsCreated.WithLabelValues(string(notification.Type), string(notification.Priority)).Inc()
		s.deliver(ctx, notification, permission)
	}

	return created
}

// deliver entrega ao canal externo apenas quando habilitado e permitido
func (s *Store) deliver(ctx context.Context, notification domain.Notification, permission domain.NotificationPermission) {
	if !s.options.DeliveryEnabled || permission != domain.PermissionGranted || s.notifier == nil {
		metrics.NotificationsDelivered.WithLabelValues("skipped").Inc()
		return
	}

	delivery := BuildDelivery(notification, s.options.SoundEnabled)
	id := notification.ID
	delivery.OnActivate = func() {
		if err := s.Activate(id); err != nil {
			logrus.WithField("notification_id", id).WithError(err).Debug("Notificação ativada não está mais no conjunto")
		}
	}

	if err := s.notifier.Notify(ctx, delivery); err != nil {
		metrics.NotificationsDelivered.WithLabelValues("error").Inc()
		logrus.WithFields(logrus.Fields{
			"notification_id":   id,
			"notification_type": notification.Type,
		}).WithError(err).Warn("Falha ao entregar notificação")
		return
	}

	metrics.NotificationsDelivered.WithLabelValues("delivered").Inc()
}

// BuildDelivery monta a apresentação externa: urgentes exigem interação,
// as demais fecham sozinhas
func BuildDelivery(notification domain.Notification, soundEnabled bool) domain.Delivery {
	delivery := domain.Delivery{
		Tag:      notification.ID,
		Title:    notification.Title,
		Message:  notification.Message,
		Priority: notification.Priority,
		Silent:   !soundEnabled,
	}

	if notification.Priority == domain.PriorityUrgent {
		delivery.RequireInteraction = true
	} else {
		delivery.AutoDismissAfter = autoDismissAfter
	}

	return delivery
}

// Activate trata o clique na notificação entregue: marca como lida e
// executa a ação associada
func (s *Store) Activate(id string) error {
	s.mu.Lock()
	index := s.indexLocked(id)
	if index < 0 {
		s.mu.Unlock()
		return ErrNotificationNotFound
	}

	s.items[index].IsRead = true
	callback := s.items[index].ActionCallback
	s.mu.Unlock()

	if callback != nil {
		callback()
	}

	return nil
}

func (s *Store) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexLocked(id)
	if index < 0 {
		return ErrNotificationNotFound
	}

	s.items[index].IsRead = true
	return nil
}

func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].IsRead = true
	}
}

// Dismiss remove a notificação. O estado é terminal: o mesmo ID não volta.
func (s *Store) Dismiss(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexLocked(id)
	if index < 0 {
		return ErrNotificationNotFound
	}

	s.items = append(s.items[:index], s.items[index+1:]...)
	s.dismissed[id] = struct{}{}
	metrics.NotificationsActive.Set(float64(len(s.items)))

	return nil
}

func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		s.dismissed[item.ID] = struct{}{}
	}
	s.items = make([]domain.Notification, 0)
	metrics.NotificationsActive.Set(0)
}

// List retorna uma cópia do conjunto atual, já ordenado
func (s *Store) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Notification, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Stats() domain.NotificationStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ComputeStats(s.items)
}

// ComputeStats conta total, não lidas, urgentes não lidas e follow-ups não lidos
func ComputeStats(items []domain.Notification) domain.NotificationStats {
	stats := domain.NotificationStats{Total: len(items)}

	for _, item := range items {
		if item.IsRead {
			continue
		}

		stats.Unread++
		if item.Priority == domain.PriorityUrgent {
			stats.Urgent++
		}
		if item.Type.IsFollowUp() {
			stats.FollowUpsDue++
		}
	}

	return stats
}

func (s *Store) Permission() domain.NotificationPermission {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.permission
}

// RequestPermission pede permissão ao canal externo e guarda o resultado
func (s *Store) RequestPermission(ctx context.Context) (domain.NotificationPermission, error) {
	if s.notifier == nil {
		return s.Permission(), ErrNotifierUnavailable
	}

	permission, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return s.Permission(), err
	}

	s.mu.Lock()
	s.permission = permission
	s.mu.Unlock()

	logrus.WithField("notification_permission", permission).Info("Permissão de notificações atualizada")
	return permission, nil
}

// Initialize pede permissão uma vez quando a entrega está habilitada e a
// permissão ainda não foi decidida
func (s *Store) Initialize(ctx context.Context) {
	if !s.options.DeliveryEnabled || s.Permission() != domain.PermissionDefault {
		return
	}

	if _, err := s.RequestPermission(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível obter permissão de notificações")
	}
}

func (s *Store) indexLocked(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
