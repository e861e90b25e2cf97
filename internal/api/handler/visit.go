package handler

import (
	"net/http"

	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
)

func ListVisits(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visits, err := service.ListVisits()
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, visits)
	})
}

func GetVisit(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		visit, err := service.GetVisit(id)
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, visit)
	})
}

// CreateVisit cadastra a visita. Falha de geocodificação não é erro: a
// mensagem volta em geocodeError e a visita fica sem coordenadas.
func CreateVisit(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateVisitRequest
		if !decodeBody(w, r, &req) {
			return
		}

		response, err := service.CreateVisit(r.Context(), &req)
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, response)
	})
}

func UpdateVisit(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateVisitRequest
		if !decodeBody(w, r, &req) {
			return
		}

		// O ID da URL prevalece sobre o do corpo
		req.ID = id

		visit, err := service.UpdateVisit(r.Context(), &req)
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, visit)
	})
}

func DeleteVisit(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteVisit(r.Context(), id); err != nil {
			writeVisitError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListMapPoints(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		points, err := service.ListMapPoints()
		if err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, points)
	})
}

func ListEnums(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.ListEnums())
	})
}

// ResetAll apaga visitas e follow-ups (uso em desenvolvimento)
func ResetAll(service visiting.VisitingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.ResetAll(r.Context()); err != nil {
			writeVisitError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Dados resetados com sucesso"})
	})
}
