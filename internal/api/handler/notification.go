package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/visita360-api/internal/usecases/notifying"
	"github.com/vfg2006/visita360-api/pkg/apiErrors"
	"github.com/vfg2006/visita360-api/pkg/log"
)

// ListNotifications retorna o conjunto atual com estatísticas e permissão
func ListNotifications(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.List())
	})
}

func notificationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da notificação é obrigatório", nil)
		return "", false
	}
	return id, true
}

func MarkNotificationRead(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := notificationID(w, r)
		if !ok {
			return
		}

		if err := service.MarkRead(id); err != nil {
			writeNotificationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, service.List())
	})
}

// ActivateNotification equivale ao clique na notificação entregue
func ActivateNotification(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := notificationID(w, r)
		if !ok {
			return
		}

		if err := service.Activate(id); err != nil {
			writeNotificationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, service.List())
	})
}

func MarkAllNotificationsRead(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.MarkAllRead()
		writeJSON(w, http.StatusOK, service.List())
	})
}

func DismissNotification(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := notificationID(w, r)
		if !ok {
			return
		}

		if err := service.Dismiss(id); err != nil {
			writeNotificationError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ClearNotifications(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.ClearAll()
		w.WriteHeader(http.StatusNoContent)
	})
}

// RefreshNotifications reavalia na hora e retorna as notificações novas
func RefreshNotifications(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		created, err := service.Refresh(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao reavaliar notificações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reavaliar notificações", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"created": created,
			"stats":   service.List().Stats,
		})
	})
}

func RequestNotificationPermission(service notifying.NotificationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		permission, err := service.RequestPermission(r.Context())
		if err != nil {
			writeNotificationError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"permission": permission})
	})
}
