package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
	"github.com/clipsburger/sales-dashboard-api/pkg/log"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// financialReportRequest são os filtros e parâmetros da simulação do DRE.
// Todos os campos são opcionais; parâmetros ausentes assumem os padrões.
type financialReportRequest struct {
	Filters         domain.SaleFilters `json:"filters"`
	SalarioMinimo   *float64           `json:"salario_minimo,omitempty"`
	Contadora       *float64           `json:"contadora,omitempty"`
	FornecedoresPct *float64           `json:"fornecedores_pct,omitempty"`
}

// dreLine é uma linha formatada do demonstrativo de resultados
type dreLine struct {
	Descricao string `json:"descricao"`
	Valor     string `json:"valor"`
}

// financialReportResponse devolve o DRE cru mais a tabela formatada e o eco
// dos parâmetros efetivamente usados no cálculo
type financialReportResponse struct {
	domain.FinancialResult
	Parametros    map[string]float64 `json:"parametros"`
	Demonstrativo []dreLine          `json:"demonstrativo"`
	Filters       domain.SaleFilters `json:"filtros"`
}

// GetFinancialReport calcula o DRE simplificado sobre as vendas filtradas
func GetFinancialReport(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Corpo vazio é aceito e significa: sem filtros, parâmetros padrão
		var request financialReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("financial: invalid report request payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		params := &domain.FinancialParams{
			SalarioMinimo:   request.SalarioMinimo,
			Contadora:       request.Contadora,
			FornecedoresPct: request.FornecedoresPct,
		}

		result, err := service.GetFinancialReport(r.Context(), request.Filters, params)
		if err != nil {
			logger.WithError(err).Error("financial: failed to compute financial report")
			writeDashboardError(w, err, "Erro ao calcular o demonstrativo financeiro")
			return
		}

		salario, contadora, fornecedoresPct := params.Resolve()

		logger.WithFields(log.Fields{
			"faturamento_bruto": result.FaturamentoBruto,
			"lucro_bruto":       result.LucroBruto,
		}).Debug("financial: report computed")

		response := financialReportResponse{
			FinancialResult: *result,
			Parametros: map[string]float64{
				"salario_minimo":   salario,
				"contadora":        contadora,
				"fornecedores_pct": fornecedoresPct,
			},
			Demonstrativo: buildDemonstrativo(result),
			Filters:       request.Filters,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("financial: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}

// buildDemonstrativo monta as linhas do demonstrativo na ordem de exibição,
// com custos apresentados como valores negativos
func buildDemonstrativo(result *domain.FinancialResult) []dreLine {
	return []dreLine{
		{Descricao: "(+) Faturamento Bruto", Valor: utils.FormatBRL(result.FaturamentoBruto)},
		{Descricao: "(-) Impostos Simples Nacional", Valor: utils.FormatBRL(-result.ImpostoSimples)},
		{Descricao: "(-) Custo dos Produtos", Valor: utils.FormatBRL(-result.CustoFornecedores)},
		{Descricao: "(-) Folha de Pagamento", Valor: utils.FormatBRL(-result.CustoFuncionario)},
		{Descricao: "(-) Contadora", Valor: utils.FormatBRL(-result.CustoContadora)},
		{Descricao: "(=) Lucro Bruto", Valor: utils.FormatBRL(result.LucroBruto)},
		{Descricao: "(=) Lucro Líquido", Valor: utils.FormatBRL(result.LucroLiquido)},
	}
}
