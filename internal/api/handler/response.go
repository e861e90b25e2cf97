package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/visita360-api/internal/usecases/dashboard"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/internal/usecases/notifying"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
	"github.com/vfg2006/visita360-api/pkg/apiErrors"
	"github.com/vfg2006/visita360-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// pathID lê o parâmetro :id como inteiro positivo
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da visita é obrigatório", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da visita inválido", raw)
		return 0, false
	}

	return id, true
}

func writeVisitError(w http.ResponseWriter, r *http.Request, err error) {
	var visitErr *visiting.VisitError
	if errors.As(err, &visitErr) {
		if visitErr.Code == apiErrors.ErrDatabaseOperation {
			log.ForContext(r.Context()).WithError(err).Error("Erro de banco em operação de visitas")
		}
		apiErrors.WriteError(w, visitErr.Code, visitErr.Err.Error(), visitErr.Details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado em operação de visitas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar visita", nil)
}

func writeGeocodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, geocoding.ErrEmptyAddress):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, geocoding.ErrInvalidCoordinates):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCoordinates, err.Error(), nil)
	case errors.Is(err, geocoding.ErrAddressNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAddressNotFound, err.Error(), nil)
	case errors.Is(err, geocoding.ErrProvider):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func writeNotificationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notifying.ErrNotificationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotificationNotFound, "Notificação não encontrada", nil)
	case errors.Is(err, notifying.ErrNotifierUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Canal de entrega de notificações indisponível", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func writeDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	var filterErr *dashboard.FilterError
	if errors.As(err, &filterErr) {
		code := apiErrors.ErrInvalidFormat
		if errors.Is(err, dashboard.ErrInvalidFilterEnum) {
			code = apiErrors.ErrInvalidEnum
		}
		apiErrors.WriteError(w, code, filterErr.Err.Error(), filterErr.Field)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular dashboard")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar dados do dashboard", nil)
}
