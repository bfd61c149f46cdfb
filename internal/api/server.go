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
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile"
	"github.com/vfg2006/creator-pitch-api/internal/api/handler"
	"github.com/vfg2006/creator-pitch-api/internal/api/handler/router"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/scheduler"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/activity"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/pitching"
	"github.com/vfg2006/creator-pitch-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os usecases expostos pela API
type Services struct {
	Authenticator       authenticating.Authenticator
	Activity            activity.Service
	Outreach            outreach.Service
	Pitching            pitching.Service
	Profiles            profile.ProfileFetcher
	GhostedSweepService *scheduler.GhostedSweepService
}

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.GhostedSweepService != nil {
		cronServices.GhostedSweepService = services.GhostedSweepService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.BrandActivity(services.Activity)...),
		router.WithRoutes(handler.Outreach(services.Outreach)...),
		router.WithRoutes(handler.Pitch(services.Pitching)...),
		router.WithRoutes(handler.Creators(services.Profiles)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// New cria o servidor; onShutdown roda depois do http.Server parar, na ordem informada
func New(cfg *config.Config, services Services, onShutdown ...func() error) (*Server, error) {
	if services.Authenticator == nil || services.Outreach == nil || services.Pitching == nil {
		return nil, fmt.Errorf("serviços obrigatórios não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

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

// Shutdown para o servidor HTTP e depois libera os recursos registrados
func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")

	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}
