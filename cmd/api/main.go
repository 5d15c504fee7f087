package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/clipsburger/sales-dashboard-api/internal/api"
	"github.com/clipsburger/sales-dashboard-api/internal/config"
	"github.com/clipsburger/sales-dashboard-api/internal/scheduler"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/accounting"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/filtering"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/normalizing"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Seções sem credenciais podem ir para o log de depuração
	logrus.Debug("Configuração do servidor: ", utils.PrettyJson(cfg.Server))
	logrus.Debug("Configuração da recarga: ", utils.PrettyJson(cfg.SalesReload))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient := sheetsConn(ctx, cfg)
	sheetsIntegrator := sheets.New(sheetsClient)

	dashboardService := dashboard.NewService(
		sheetsIntegrator,
		normalizing.NewService(),
		filtering.NewService(),
		aggregating.NewService(),
		accounting.NewService(),
	)

	// Carga inicial do snapshot. A falha não derruba o serviço: a recarga
	// periódica e as consultas tentam de novo.
	if err := dashboardService.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Carga inicial da planilha falhou, seguindo sem snapshot")
	} else {
		loadedAt, count := dashboardService.LastReload()
		logrus.WithFields(logrus.Fields{
			"vendas":    count,
			"loaded_at": loadedAt.Format(time.RFC3339),
		}).Info("Snapshot inicial de vendas carregado com sucesso")
	}

	// Inicia o agendador de recarga em background
	salesReloadService := scheduler.NewSalesReloadService(dashboardService, cfg)
	if err := salesReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de vendas")
	} else {
		logrus.Info("Agendador de recarga de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, sheetsIntegrator, dashboardService, salesReloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger define o formato dos logs e muda o diretório de trabalho
// para o do binário, para que o .env local seja encontrado em desenvolvimento
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sheetsConn cria o cliente autenticado do Google Sheets
func sheetsConn(ctx context.Context, cfg *config.Config) sheetsclient.Client {
	client, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do Google Sheets")
	}

	logrus.Info("Cliente do Google Sheets criado com sucesso")
	return client
}
