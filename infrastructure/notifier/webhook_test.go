package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/internal/domain"
)

func TestWebhookNotifier(t *testing.T) {
	var received WebhookPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, time.Second)

	permission, err := notifier.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, permission)

	err = notifier.Notify(context.Background(), domain.Delivery{
		Tag:              "follow_up_due_1_0",
		Title:            "Follow-up Necessário",
		Message:          "Alfa - Prazo de 3 dias atingido",
		Priority:         domain.PriorityMedium,
		AutoDismissAfter: 5 * time.Second,
		Silent:           true,
	})
	require.NoError(t, err)

	assert.Equal(t, "follow_up_due_1_0", received.Tag)
	assert.Equal(t, "Alfa - Prazo de 3 dias atingido", received.Body)
	assert.Equal(t, int64(5000), received.AutoDismissMs)
	assert.True(t, received.Silent)
	assert.False(t, received.RequireInteraction)
}

func TestWebhookNotifierErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewWebhookNotifier(server.URL, time.Second).Notify(context.Background(), domain.Delivery{Tag: "x"})
	assert.Error(t, err)

	unconfigured := NewWebhookNotifier("", 0)
	permission, err := unconfigured.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDenied, permission)
	assert.Error(t, unconfigured.Notify(context.Background(), domain.Delivery{}))
}

func TestLogNotifier(t *testing.T) {
	notifier := NewLogNotifier()

	permission, err := notifier.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, permission)

	assert.NoError(t, notifier.Notify(context.Background(), domain.Delivery{Title: "t", Priority: domain.PriorityUrgent}))
}
