package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
)

type fakeRefresher struct {
	calls   atomic.Int32
	created []domain.Notification
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) ([]domain.Notification, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.created, f.err
}

func newConfig(enabled bool, interval time.Duration) *config.Config {
	return &config.Config{
		NotificationRefresh: config.NotificationRefresh{Interval: interval, Enabled: enabled},
	}
}

func TestNotificationRefreshService_RefreshNotifications(t *testing.T) {
	tests := []struct {
		name      string
		refresher *fakeRefresher
		validate  func(t *testing.T, err error, status map[string]any)
	}{
		{
			name:      "registra as notificações novas",
			refresher: &fakeRefresher{created: []domain.Notification{{ID: "a"}, {ID: "b"}}},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.NoError(t, err)
				assert.Equal(t, 2, status["last_refresh_created"])
				assert.Equal(t, "", status["last_refresh_error"])
				assert.Equal(t, false, status["refresh_running"])
			},
		},
		{
			name:      "guarda o erro da última execução",
			refresher: &fakeRefresher{err: errors.New("banco indisponível")},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.Error(t, err)
				assert.Equal(t, "banco indisponível", status["last_refresh_error"])
				assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewNotificationRefreshService(tt.refresher, newConfig(true, time.Minute))

			err := service.RefreshNotifications(context.Background())
			tt.validate(t, err, service.GetStatus())
			assert.Equal(t, int32(1), tt.refresher.calls.Load())
		})
	}
}

func TestNotificationRefreshService_IgnoresConcurrentRun(t *testing.T) {
	refresher := &fakeRefresher{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	service := NewNotificationRefreshService(refresher, newConfig(true, time.Minute))

	done := make(chan error, 1)
	go func() {
		done <- service.RefreshNotifications(context.Background())
	}()

	<-refresher.started
	assert.Equal(t, true, service.GetStatus()["refresh_running"])

	require.NoError(t, service.RefreshNotifications(context.Background()))
	service.TriggerManualSync()

	close(refresher.block)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestNotificationRefreshService_TriggerManualSync(t *testing.T) {
	refresher := &fakeRefresher{started: make(chan struct{}, 1)}
	service := NewNotificationRefreshService(refresher, newConfig(false, time.Minute))

	service.TriggerManualSync()

	select {
	case <-refresher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("reavaliação manual não foi executada")
	}
}

func TestNotificationRefreshService_Start(t *testing.T) {
	t.Run("desabilitado não agenda", func(t *testing.T) {
		refresher := &fakeRefresher{}
		service := NewNotificationRefreshService(refresher, newConfig(false, time.Minute))

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, false, service.GetStatus()["refresh_enabled"])
		assert.Zero(t, refresher.calls.Load())
	})

	t.Run("executa no intervalo configurado", func(t *testing.T) {
		refresher := &fakeRefresher{started: make(chan struct{}, 10)}
		service := NewNotificationRefreshService(refresher, newConfig(true, 50*time.Millisecond))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))

		select {
		case <-refresher.started:
		case <-time.After(2 * time.Second):
			t.Fatal("reavaliação agendada não foi executada")
		}
		assert.Equal(t, "50ms", service.GetStatus()["refresh_interval"])
	})
}
