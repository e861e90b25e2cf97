// Package notifier contém os canais de entrega das notificações
package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/internal/domain"
)

// LogNotifier entrega as notificações no log da aplicação. A permissão é
// sempre concedida.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, delivery domain.Delivery) error {
	entry := logrus.WithFields(logrus.Fields{
		"notification_id":                  delivery.Tag,
		"notification_priority":            delivery.Priority,
		"notification_require_interaction": delivery.RequireInteraction,
		"notification_silent":              delivery.Silent,
	})

	if delivery.Priority == domain.PriorityUrgent {
		entry.Warnf("🔔 %s: %s", delivery.Title, delivery.Message)
		return nil
	}

	entry.Infof("🔔 %s: %s", delivery.Title, delivery.Message)
	return nil
}

func (n *LogNotifier) RequestPermission(ctx context.Context) (domain.NotificationPermission, error) {
	return domain.PermissionGranted, nil
}
