package handler

import (
	"net/http"

	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/pkg/apiErrors"
)

func Geocode(service geocoding.GeocodingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Geocode(r.Context(), r.URL.Query().Get("address"))
		if err != nil {
			writeGeocodeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ReverseGeocode(service geocoding.GeocodingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		lat, lng, ok := geocoding.ParseCoordinates(query.Get("lat"), query.Get("lng"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidCoordinates, geocoding.ErrInvalidCoordinates.Error(), map[string]string{
				"lat": query.Get("lat"),
				"lng": query.Get("lng"),
			})
			return
		}

		result, err := service.ReverseGeocode(r.Context(), lat, lng)
		if err != nil {
			writeGeocodeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// GeocodeStatus expõe o indicador de carregamento e a última falha
func GeocodeStatus(service geocoding.GeocodingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status())
	})
}

func GeocodeCacheStats(service geocoding.GeocodingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.CacheStats())
	})
}

func ClearGeocodeCache(service geocoding.GeocodingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.ClearCache(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao limpar cache de geocodificação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
