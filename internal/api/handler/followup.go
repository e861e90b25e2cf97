package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
	"github.com/vfg2006/visita360-api/pkg/apiErrors"
)

// ListFollowUps lista todos os follow-ups ou, com ?visitaId=, os de uma visita
func ListFollowUps(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var visitID *int64

		if raw := r.URL.Query().Get("visitaId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "visitaId inválido", raw)
				return
			}
			visitID = &id
		}

		followUps, err := service.ListFollowUps(visitID)
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, followUps)
	})
}

func CreateFollowUp(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateFollowUpRequest
		if !decodeBody(w, r, &req) {
			return
		}

		response, err := service.CreateFollowUp(r.Context(), &req)
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, response)
	})
}
