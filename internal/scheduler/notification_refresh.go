// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
)

// Refresher é quem recalcula o conjunto de notificações
type Refresher interface {
	Refresh(ctx context.Context) ([]domain.Notification, error)
}

type NotificationRefreshConfig struct {
	Interval time.Duration
	Enabled  bool
}

// NotificationRefreshService reavalia as notificações em intervalo fixo
type NotificationRefreshService struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	config    NotificationRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshCreated     int
	lastRefreshError       string
}

func NewNotificationRefreshService(refresher Refresher, cfg *config.Config) *NotificationRefreshService {
	refreshConfig := NotificationRefreshConfig{
		Interval: cfg.NotificationRefresh.Interval, // Default: 60s
		Enabled:  cfg.NotificationRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"refresh_interval": refreshConfig.Interval.String(),
		"refresh_enabled":  refreshConfig.Enabled,
	}).Info("Configuração do agendador de notificações carregada")

	return &NotificationRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

// Start agenda a reavaliação. A primeira execução acontece após um
// intervalo completo; a carga inicial é feita por quem inicia a aplicação.
func (s *NotificationRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reavaliação periódica de notificações desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando reavaliação periódica de notificações")

	_, err := s.scheduler.Every(s.config.Interval).WaitForSchedule().Do(func() {
		if err := s.RefreshNotifications(ctx); err != nil {
			logrus.WithError(err).Error("Erro na reavaliação periódica de notificações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reavaliação de notificações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando reavaliação periódica de notificações")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshNotifications executa uma reavaliação, ignorando a chamada se
// outra ainda estiver em andamento
func (s *NotificationRefreshService) RefreshNotifications(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Reavaliação de notificações já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	created, err := s.refresher.Refresh(ctx)

	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()

	if err != nil {
		s.lastRefreshError = err.Error()
		return err
	}

	s.lastRefreshError = ""
	s.lastRefreshCreated = len(created)

	if len(created) > 0 {
		logrus.WithField("notification_new", len(created)).Info("Novas notificações geradas")
	}

	return nil
}

// TriggerManualSync dispara uma reavaliação fora do agendamento
func (s *NotificationRefreshService) TriggerManualSync() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Reavaliação de notificações já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando reavaliação manual de notificações")
	go func() {
		if err := s.RefreshNotifications(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na reavaliação manual de notificações")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *NotificationRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_interval":          s.config.Interval.String(),
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_created":      s.lastRefreshCreated,
		"last_refresh_error":        s.lastRefreshError,
	}
}
