package notifier

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/visita360-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WebhookPayload é o corpo enviado ao webhook
type WebhookPayload struct {
	Tag                string `json:"tag"`
	Title              string `json:"title"`
	Body               string `json:"body"`
	Priority           string `json:"priority"`
	RequireInteraction bool   `json:"requireInteraction"`
	AutoDismissMs      int64  `json:"autoDismissMs,omitempty"`
	Silent             bool   `json:"silent"`
}

// WebhookNotifier envia cada notificação nova como POST JSON. Sem URL
// configurada a permissão é negada.
type WebhookNotifier struct {
	httpClient *http.Client
	url        string
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebhookNotifier{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: strings.TrimSpace(url),
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, delivery domain.Delivery) error {
	if n.url == "" {
		return fmt.Errorf("webhook de notificações não configurado")
	}

	payload := WebhookPayload{
		Tag:                delivery.Tag,
		Title:              delivery.Title,
		Body:               delivery.Message,
		Priority:           string(delivery.Priority),
		RequireInteraction: delivery.RequireInteraction,
		AutoDismissMs:      delivery.AutoDismissAfter.Milliseconds(),
		Silent:             delivery.Silent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar notificação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook respondeu com status: %s", resp.Status)
	}

	return nil
}

func (n *WebhookNotifier) RequestPermission(ctx context.Context) (domain.NotificationPermission, error) {
	if n.url == "" {
		return domain.PermissionDenied, nil
	}
	return domain.PermissionGranted, nil
}
