package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/visita360-api/internal/api/handler/router"
	"github.com/vfg2006/visita360-api/internal/usecases/dashboard"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/internal/usecases/notifying"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
	"github.com/vfg2006/visita360-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Visits(service visiting.VisitingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/enums",
			Method:  http.MethodGet,
			Handler: ListEnums(service),
		},
		{
			Path:    "/v1/visits",
			Method:  http.MethodGet,
			Handler: ListVisits(service),
		},
		{
			Path:    "/v1/visits",
			Method:  http.MethodPost,
			Handler: CreateVisit(service),
		},
		{
			Path:    "/v1/visits/:id",
			Method:  http.MethodGet,
			Handler: GetVisit(service),
		},
		{
			Path:    "/v1/visits/:id",
			Method:  http.MethodPut,
			Handler: UpdateVisit(service),
		},
		{
			Path:    "/v1/visits/:id",
			Method:  http.MethodDelete,
			Handler: DeleteVisit(service),
		},
		{
			Path:    "/v1/map",
			Method:  http.MethodGet,
			Handler: ListMapPoints(service),
		},
		{
			Path:        "/v1/reset",
			Method:      http.MethodPost,
			Handler:     ResetAll(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DevelopmentOnly()},
		},
	}
}

func FollowUps(service visiting.VisitingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/followups",
			Method:  http.MethodGet,
			Handler: ListFollowUps(service),
		},
		{
			Path:    "/v1/followups",
			Method:  http.MethodPost,
			Handler: CreateFollowUp(service),
		},
	}
}

func Geocoding(service geocoding.GeocodingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/geocode",
			Method:  http.MethodGet,
			Handler: Geocode(service),
		},
		{
			Path:    "/v1/geocode/reverse",
			Method:  http.MethodGet,
			Handler: ReverseGeocode(service),
		},
		{
			Path:    "/v1/geocode/status",
			Method:  http.MethodGet,
			Handler: GeocodeStatus(service),
		},
		{
			Path:    "/v1/geocode/cache/stats",
			Method:  http.MethodGet,
			Handler: GeocodeCacheStats(service),
		},
		{
			Path:    "/v1/geocode/cache",
			Method:  http.MethodDelete,
			Handler: ClearGeocodeCache(service),
		},
	}
}

func Notifications(service notifying.NotificationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(service),
		},
		{
			Path:    "/v1/notifications",
			Method:  http.MethodDelete,
			Handler: ClearNotifications(service),
		},
		{
			Path:    "/v1/notifications/read-all",
			Method:  http.MethodPost,
			Handler: MarkAllNotificationsRead(service),
		},
		{
			Path:    "/v1/notifications/refresh",
			Method:  http.MethodPost,
			Handler: RefreshNotifications(service),
		},
		{
			Path:    "/v1/notifications/permission",
			Method:  http.MethodPost,
			Handler: RequestNotificationPermission(service),
		},
		{
			Path:    "/v1/notifications/items/:id/read",
			Method:  http.MethodPost,
			Handler: MarkNotificationRead(service),
		},
		{
			Path:    "/v1/notifications/items/:id/activate",
			Method:  http.MethodPost,
			Handler: ActivateNotification(service),
		},
		{
			Path:    "/v1/notifications/items/:id",
			Method:  http.MethodDelete,
			Handler: DismissNotification(service),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
