package middleware

import (
	"net/http"

	"github.com/vfg2006/visita360-api/pkg/apiErrors"
	"github.com/vfg2006/visita360-api/pkg/log"
)

// DevelopmentOnly bloqueia a rota fora do ambiente de desenvolvimento (APP_ENV)
func DevelopmentOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !log.IsDevelopment() {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Rota de desenvolvimento chamada em produção")
				apiErrors.WriteError(w, apiErrors.ErrForbidden, "Rota disponível apenas em desenvolvimento", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
