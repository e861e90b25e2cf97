package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/database/postgres"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/visita360-api/infrastructure/notifier"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/internal/api"
	"github.com/vfg2006/visita360-api/internal/api/handler"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/scheduler"
	"github.com/vfg2006/visita360-api/internal/usecases/dashboard"
	"github.com/vfg2006/visita360-api/internal/usecases/geocoding"
	"github.com/vfg2006/visita360-api/internal/usecases/notifying"
	"github.com/vfg2006/visita360-api/internal/usecases/visiting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	visitRepo := repository.NewVisitRepository(pgConn)
	followUpRepo := repository.NewFollowUpRepository(pgConn)
	stateRepo := repository.NewStateRepository(pgConn)

	nominatimClient := nominatimclient.NewClient(cfg)
	nominatimIntegrator := nominatim.New(nominatimClient)

	geocodeService := geocoding.NewGeocodeService(cfg, nominatimIntegrator, stateRepo)
	if err := geocodeService.Load(); err != nil {
		logrus.WithError(err).Warn("Cache de geocodificação não carregado, iniciando vazio")
	}

	notificationService := notifying.NewService(cfg, visitRepo, followUpRepo, newNotifier(cfg))
	notificationService.Initialize(ctx)

	if _, err := notificationService.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Erro na avaliação inicial das notificações")
	}

	visitService := visiting.NewVisitService(cfg, visitRepo, followUpRepo, geocodeService, notificationService)
	dashboardService := dashboard.NewService(cfg, visitRepo, followUpRepo)

	notificationRefreshService := scheduler.NewNotificationRefreshService(notificationService, cfg)
	if err := notificationRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de notificações")
	} else {
		logrus.Info("Agendador de notificações iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Visits:        visitService,
		Geocoder:      geocodeService,
		Notifications: notificationService,
		Dashboard:     dashboardService,
		CronJobs: handler.CronJobServices{
			NotificationRefreshService: notificationRefreshService,
		},
		Database: pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown(func() {
		cancel()
		if err := geocodeService.Flush(); err != nil {
			logrus.WithError(err).Error("Erro ao persistir cache de geocodificação")
		}
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newNotifier entrega pelo webhook quando configurado; senão apenas registra em log
func newNotifier(cfg *config.Config) notifying.Notifier {
	if cfg.Notifications.WebhookURL != "" {
		logrus.WithField("notification_webhook", cfg.Notifications.WebhookURL).Info("Entrega de notificações via webhook")
		return notifier.NewWebhookNotifier(cfg.Notifications.WebhookURL, 5*time.Second)
	}

	return notifier.NewLogNotifier()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
