package dashboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/accounting"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/filtering"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/normalizing"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// Mensagem de confirmação devolvida após um registro de venda aceito
const successMessage = "Dados registrados com sucesso! ✅"

const (
	// lastSalesCount é o tamanho da tabela de últimas vendas
	lastSalesCount = 15

	// defaultRollingDays é a janela móvel sugerida nos filtros iniciais
	defaultRollingDays = 7
)

// DashboardService orquestra o ciclo completo do painel: mantém o snapshot
// de vendas normalizadas em memória e recalcula filtros, agregados e o DRE
// a cada consulta.
type DashboardService interface {
	Reload(ctx context.Context) error
	LastReload() (time.Time, int)
	RegisterSale(ctx context.Context, submission domain.SaleSubmission) (*domain.SaleReceipt, error)
	GetSalesTable(ctx context.Context, filters domain.SaleFilters) (*domain.SalesTable, error)
	GetInsights(ctx context.Context, filters domain.SaleFilters) (*domain.SalesInsights, error)
	GetStatistics(ctx context.Context, filters domain.SaleFilters) (*domain.SalesStatistics, error)
	GetFinancialReport(ctx context.Context, filters domain.SaleFilters, params *domain.FinancialParams) (*domain.FinancialResult, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

type Service struct {
	integrator sheets.SheetsIntegrator
	normalizer normalizing.Normalizer
	filter     filtering.Filter
	aggregator aggregating.Aggregator
	calculator accounting.Calculator

	// O snapshot é trocado por inteiro a cada recarga; as consultas só leem
	mu       sync.RWMutex
	sales    []domain.NormalizedSale
	loadedAt time.Time

	now func() time.Time
}

func NewService(
	integrator sheets.SheetsIntegrator,
	normalizer normalizing.Normalizer,
	filter filtering.Filter,
	aggregator aggregating.Aggregator,
	calculator accounting.Calculator,
) DashboardService {
	return &Service{
		integrator: integrator,
		normalizer: normalizer,
		filter:     filter,
		aggregator: aggregator,
		calculator: calculator,
		now:        time.Now,
	}
}

// Reload lê a planilha inteira, normaliza as linhas e troca o snapshot em
// memória. É chamado na subida do serviço, pelo agendador periódico, após
// cada registro de venda e manualmente pelo endpoint de cron.
func (s *Service) Reload(ctx context.Context) error {
	rows, err := s.integrator.ListSales(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler as vendas da planilha")
		return NewDashboardError(ErrSpreadsheetRead, apiErrors.ErrSpreadsheetRead, "Falha ao ler a planilha de vendas")
	}

	sales := s.normalizer.Normalize(rows)

	s.mu.Lock()
	s.sales = sales
	s.loadedAt = s.now()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"linhas": len(rows),
		"vendas": len(sales),
	}).Debug("Snapshot de vendas recarregado da planilha")

	return nil
}

// LastReload retorna o instante da última recarga e o tamanho do snapshot
func (s *Service) LastReload() (time.Time, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt, len(s.sales)
}

// RegisterSale valida a venda submetida, grava na planilha e recarrega o
// snapshot. A data chega como YYYY-MM-DD e é gravada como DD/MM/YYYY.
func (s *Service) RegisterSale(ctx context.Context, submission domain.SaleSubmission) (*domain.SaleReceipt, error) {
	date, err := validateSubmission(submission)
	if err != nil {
		return nil, err
	}

	if err := s.integrator.AppendSale(ctx, submission); err != nil {
		logrus.WithError(err).Error("Erro ao gravar venda na planilha")
		return nil, NewDashboardError(ErrSpreadsheetWrite, apiErrors.ErrSpreadsheetWrite, "Falha ao gravar a venda na planilha")
	}

	// A venda já está gravada; uma falha na recarga não desfaz o registro e
	// o agendador corrige o snapshot no próximo ciclo.
	if err := s.Reload(ctx); err != nil {
		logrus.WithError(err).Warn("Venda gravada, mas a recarga do snapshot falhou")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar o identificador do registro")
	}

	return &domain.SaleReceipt{
		ID:       id,
		Data:     utils.FormatDateBR(*date),
		Cartao:   submission.Cartao,
		Dinheiro: submission.Dinheiro,
		Pix:      submission.Pix,
		Total:    submission.Total(),
		Message:  successMessage,
	}, nil
}

// GetSalesTable retorna o retrato colunar do conjunto filtrado mais as
// últimas vendas em ordem da mais recente para a mais antiga.
func (s *Service) GetSalesTable(ctx context.Context, filters domain.SaleFilters) (*domain.SalesTable, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	filtered := s.filter.Apply(s.snapshot(), filters)

	table := &domain.SalesTable{
		Datas:          make([]string, 0, len(filtered)),
		Cartao:         make([]float64, 0, len(filtered)),
		Dinheiro:       make([]float64, 0, len(filtered)),
		Pix:            make([]float64, 0, len(filtered)),
		Totais:         make([]float64, 0, len(filtered)),
		DiasSemana:     make([]string, 0, len(filtered)),
		TotalRegistros: len(filtered),
		UltimasVendas:  lastSalesNewestFirst(filtered, lastSalesCount),
		Filters:        filters,
	}

	for _, sale := range filtered {
		table.Datas = append(table.Datas, sale.DataFormatada)
		table.Cartao = append(table.Cartao, sale.Cartao)
		table.Dinheiro = append(table.Dinheiro, sale.Dinheiro)
		table.Pix = append(table.Pix, sale.Pix)
		table.Totais = append(table.Totais, sale.Total)
		table.DiasSemana = append(table.DiasSemana, sale.DiaSemana)
		table.SomaTotal += sale.Total
	}

	return table, nil
}

// GetInsights calcula os agregados de todos os gráficos do painel sobre o
// conjunto filtrado
func (s *Service) GetInsights(ctx context.Context, filters domain.SaleFilters) (*domain.SalesInsights, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	filtered := s.filter.Apply(s.snapshot(), filters)
	totals := s.aggregator.PaymentMethodTotals(filtered)

	return &domain.SalesInsights{
		VendasDiarias:      s.aggregator.DailyTotals(filtered),
		MediaPorDiaSemana:  s.aggregator.WeekdayAverages(filtered, false),
		MediaDiaSemanaFull: s.aggregator.WeekdayAverages(filtered, true),
		MelhorDiaSemana:    s.aggregator.BestWeekday(filtered),
		TotaisPorMetodo:    totals,
		MetodosAtivos:      totals.NonZero(),
		Acumulado:          s.aggregator.CumulativeTotals(filtered),
		EvolucaoMensal:     s.aggregator.MonthlyEvolution(filtered),
		Distribuicao:       s.aggregator.Histogram(filtered),
		TotalRegistros:     len(filtered),
		Filters:            filters,
	}, nil
}

// GetStatistics calcula as métricas resumidas sobre o conjunto filtrado
func (s *Service) GetStatistics(ctx context.Context, filters domain.SaleFilters) (*domain.SalesStatistics, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	filtered := s.filter.Apply(s.snapshot(), filters)
	stats := s.aggregator.Statistics(filtered, s.now())

	return &stats, nil
}

// GetFinancialReport calcula o DRE simplificado sobre o conjunto filtrado
func (s *Service) GetFinancialReport(ctx context.Context, filters domain.SaleFilters, params *domain.FinancialParams) (*domain.FinancialResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	filtered := s.filter.Apply(s.snapshot(), filters)
	result := s.calculator.Compute(filtered, params)

	return &result, nil
}

// GetAvailablePeriods lista os anos e meses presentes no snapshot e a
// seleção inicial sugerida: ano e mês correntes com janela de sete dias.
func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	sales := s.snapshot()

	yearSet := make(map[int]struct{})
	monthSet := make(map[int]struct{})
	for _, sale := range sales {
		yearSet[sale.Ano] = struct{}{}
		monthSet[sale.Mes] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	months := make([]int, 0, len(monthSet))
	for month := range monthSet {
		months = append(months, month)
	}
	sort.Ints(months)

	defaults := domain.SaleFilters{RollingDays: []int{defaultRollingDays}}
	if len(years) > 0 {
		defaults.Years = []int{s.now().Year()}
	}
	if len(months) > 0 {
		defaults.Months = []int{int(s.now().Month())}
	}

	return &domain.AvailablePeriods{
		Years:          years,
		Months:         months,
		DiasSemana:     domain.DiasSemanaOrdem,
		Meses:          domain.MesesOrdem,
		DefaultFilters: defaults,
	}, nil
}

// ensureLoaded garante que o snapshot foi carregado ao menos uma vez.
// A primeira consulta que chegar antes da carga inicial dispara a leitura.
func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := !s.loadedAt.IsZero()
	s.mu.RUnlock()

	if loaded {
		return nil
	}

	return s.Reload(ctx)
}

func (s *Service) snapshot() []domain.NormalizedSale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sales
}

// validateSubmission aplica as regras de aceitação de uma venda e retorna a
// data interpretada. A ordem das verificações define qual mensagem prevalece:
// data ausente, depois valores.
func validateSubmission(submission domain.SaleSubmission) (*time.Time, error) {
	if submission.Data == "" {
		return nil, ErrDateRequired
	}

	if submission.Cartao < 0 || submission.Dinheiro < 0 || submission.Pix < 0 {
		return nil, ErrNegativeAmount
	}

	if submission.Cartao == 0 && submission.Dinheiro == 0 && submission.Pix == 0 {
		return nil, ErrNoAmount
	}

	date, err := utils.ParseDate(submission.Data)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return date, nil
}

// lastSalesNewestFirst recorta as últimas n vendas do conjunto ordenado por
// data crescente e devolve na ordem inversa, da mais recente para a mais antiga
func lastSalesNewestFirst(sales []domain.NormalizedSale, n int) []domain.NormalizedSale {
	if n > len(sales) {
		n = len(sales)
	}

	last := make([]domain.NormalizedSale, 0, n)
	for i := len(sales) - 1; i >= len(sales)-n; i-- {
		last = append(last, sales[i])
	}

	return last
}
