package handler

import (
	"net/http"

	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/dashboard"
)

// GetDashboard aceita dataIni, dataFim, segmento e estagio. Filtro vazio
// ou "all" não filtra.
func GetDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.DashboardFilters{
			StartDate: query.Get("dataIni"),
			EndDate:   query.Get("dataFim"),
		}

		if segment := query.Get("segmento"); segment != "" && segment != "all" {
			value := domain.Segment(segment)
			filters.Segment = &value
		}

		if stage := query.Get("estagio"); stage != "" && stage != "all" {
			value := domain.Stage(stage)
			filters.Stage = &value
		}

		response, err := service.GetDashboard(filters)
		if err != nil {
			writeDashboardError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}
