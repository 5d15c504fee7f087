package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/internal/config"
)

// SalesReloader é a parte do painel que o agendador precisa conhecer:
// disparar a recarga do snapshot e consultar o estado da última carga.
type SalesReloader interface {
	Reload(ctx context.Context) error
	LastReload() (time.Time, int)
}

// SalesReloadConfig representa a configuração do agendador de recarga de vendas
type SalesReloadConfig struct {
	Interval time.Duration
	Enabled  bool
}

// SalesReloadService gerencia a recarga periódica do snapshot de vendas,
// mantendo o painel alinhado com o que está na planilha.
type SalesReloadService struct {
	scheduler *gocron.Scheduler
	config    SalesReloadConfig
	dashboard SalesReloader

	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
}

// NewSalesReloadService cria uma nova instância do agendador de recarga de vendas
func NewSalesReloadService(dashboard SalesReloader, appConfig *config.Config) *SalesReloadService {
	reloadConfig := SalesReloadConfig{
		Interval: appConfig.SalesReload.Interval,
		Enabled:  appConfig.SalesReload.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval": reloadConfig.Interval.String(),
		"enabled":  reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga de vendas carregada")

	return &SalesReloadService{
		scheduler: scheduler,
		config:    reloadConfig,
		dashboard: dashboard,
	}
}

// Start inicia o agendador
func (s *SalesReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga periódica de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval", s.config.Interval.String()).Info("Iniciando agendador de recarga de vendas")

	_, err := s.scheduler.Every(s.config.Interval).Do(func() {
		s.reloadSales(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de vendas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadSales executa uma recarga completa do snapshot de vendas
func (s *SalesReloadService) reloadSales(ctx context.Context) {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de vendas já em andamento, ignorando")
		return
	}
	s.reloadRunning = true
	s.reloadMutex.Unlock()

	startTime := time.Now()
	s.lastReloadStartedAt = startTime

	defer func() {
		s.reloadMutex.Lock()
		s.reloadRunning = false
		s.reloadMutex.Unlock()
	}()

	if err := s.dashboard.Reload(ctx); err != nil {
		logrus.WithError(err).Error("Erro na recarga periódica das vendas")
		return
	}

	_, count := s.dashboard.LastReload()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"vendas":   count,
	}).Debug("Recarga periódica das vendas concluída")

	s.lastReloadCompletedAt = time.Now()
}

// TriggerManualReload inicia manualmente uma recarga das vendas
func (s *SalesReloadService) TriggerManualReload() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga manual das vendas")
	go s.reloadSales(context.Background())
}

// GetStatus retorna o status atual do agendador e do snapshot
func (s *SalesReloadService) GetStatus() map[string]any {
	loadedAt, count := s.dashboard.LastReload()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_interval":          s.config.Interval.String(),
		"snapshot_loaded_at":       loadedAt,
		"snapshot_sales":           count,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
	}
}
