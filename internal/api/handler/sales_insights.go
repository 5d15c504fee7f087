package handler

import (
	"fmt"
	"net/http"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
	"github.com/clipsburger/sales-dashboard-api/pkg/log"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// statisticsResponse acrescenta às métricas cruas a versão formatada em
// moeda brasileira exibida nos cartões da apresentação
type statisticsResponse struct {
	domain.SalesStatistics
	Formatado map[string]string `json:"formatado"`
}

// GetSalesInsights retorna os agregados de todos os gráficos do painel em
// uma única resposta
func GetSalesInsights(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := saleFiltersFromQuery(w, r)
		if !ok {
			return
		}

		insights, err := service.GetInsights(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("insights: failed to aggregate sales")
			writeDashboardError(w, err, "Erro ao calcular os agregados de vendas")
			return
		}

		logger.WithFields(log.Fields{
			"registros": insights.TotalRegistros,
		}).Debug("insights: aggregates built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}

// GetSalesStatistics retorna as métricas resumidas das abas de análise,
// nas versões crua e formatada
func GetSalesStatistics(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := saleFiltersFromQuery(w, r)
		if !ok {
			return
		}

		stats, err := service.GetStatistics(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("statistics: failed to compute sales statistics")
			writeDashboardError(w, err, "Erro ao calcular as estatísticas de vendas")
			return
		}

		response := statisticsResponse{
			SalesStatistics: *stats,
			Formatado:       formatStatistics(stats),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("statistics: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}

// formatStatistics monta os textos dos cartões: valores monetários no padrão
// R$ 1.234,56 e participações com uma casa decimal
func formatStatistics(stats *domain.SalesStatistics) map[string]string {
	return map[string]string{
		"total_geral":           utils.FormatBRL(stats.TotalGeral),
		"vendas_hoje":           utils.FormatBRL(stats.VendasHoje),
		"media_diaria":          utils.FormatBRL(stats.MediaDiaria),
		"media_por_registro":    utils.FormatBRL(stats.MediaPorRegistro),
		"maior_venda":           utils.FormatBRL(stats.MaiorVenda),
		"menor_venda":           utils.FormatBRL(stats.MenorVenda),
		"participacao_cartao":   fmt.Sprintf("%.1f%%", stats.ParticipacaoCartao),
		"participacao_dinheiro": fmt.Sprintf("%.1f%%", stats.ParticipacaoDinheiro),
		"participacao_pix":      fmt.Sprintf("%.1f%%", stats.ParticipacaoPix),
	}
}
