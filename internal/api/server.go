package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/internal/api/handler"
	"github.com/vfg2006/visita360-api/internal/api/handler/router"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/usecases/dashboard"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/internal/usecases/notifying"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
	"github.com/vfg2006/visita360-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Visits        visiting.VisitingService
	Geocoder      geocoding.GeocodingService
	Notifications notifying.NotificationService
	Dashboard     dashboard.Dashboarder
	CronJobs      handler.CronJobServices
	Database      handler.Pinger
}

func New(config *config.Config, services Services) (*Server, error) {
	handler := NewHandler(config, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Visits(services.Visits)...),
		router.WithRoutes(handler.FollowUps(services.Visits)...),
		router.WithRoutes(handler.Geocoding(services.Geocoder)...),
		router.WithRoutes(handler.Notifications(services.Notifications)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra funções executadas após o servidor HTTP parar
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado, executando operações de limpeza")

	for _, fn := range s.onShutdown {
		fn()
	}

	return nil
}
