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

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/clipsburger/sales-dashboard-api/internal/api/handler"
	"github.com/clipsburger/sales-dashboard-api/internal/api/handler/router"
	"github.com/clipsburger/sales-dashboard-api/internal/config"
	"github.com/clipsburger/sales-dashboard-api/internal/scheduler"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	sheetsIntegrator sheets.SheetsIntegrator,
	dashboardService dashboard.DashboardService,
	salesReloadService *scheduler.SalesReloadService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SalesReloadService: salesReloadService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(sheetsIntegrator)...),
		router.WithRoutes(handler.Sales(dashboardService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
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

	// O servidor cai por sinal do sistema ou pelo cancelamento do contexto
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown encerra o servidor HTTP esperando as requisições em andamento
func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
