package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard/mocks"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
)

func TestGetSalesInsights(t *testing.T) {
	t.Run("Deve devolver os agregados dos gráficos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		service.EXPECT().
			GetInsights(gomock.Any(), domain.SaleFilters{}).
			Return(&domain.SalesInsights{
				TotalRegistros:  3,
				MelhorDiaSemana: &domain.BestWeekday{DiaSemana: "Sábado", Media: 300},
				TotaisPorMetodo: domain.PaymentMethodTotals{Cartao: 450.50, Dinheiro: 50, Pix: 149.50},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sales/insights", nil)
		rec := httptest.NewRecorder()

		GetSalesInsights(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var insights domain.SalesInsights
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insights))
		assert.Equal(t, 3, insights.TotalRegistros)
		require.NotNil(t, insights.MelhorDiaSemana)
		assert.Equal(t, "Sábado", insights.MelhorDiaSemana.DiaSemana)
		assert.Equal(t, 450.50, insights.TotaisPorMetodo.Cartao)
	})

	t.Run("Deve devolver o código de leitura quando a planilha falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		service.EXPECT().
			GetInsights(gomock.Any(), domain.SaleFilters{}).
			Return(nil, dashboard.NewDashboardError(dashboard.ErrSpreadsheetRead, apiErrors.ErrSpreadsheetRead, "Falha ao ler a planilha de vendas"))

		req := httptest.NewRequest(http.MethodGet, "/sales/insights", nil)
		rec := httptest.NewRecorder()

		GetSalesInsights(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrSpreadsheetRead, apiErr.Code)
	})
}

func TestGetSalesStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		GetStatistics(gomock.Any(), domain.SaleFilters{RollingDays: []int{7}}).
		Return(&domain.SalesStatistics{
			TotalGeral:           650,
			VendasHoje:           200,
			MediaDiaria:          216.67,
			DiasComVendas:        3,
			TotalRegistros:       3,
			MediaPorRegistro:     216.67,
			MaiorVenda:           300,
			MenorVenda:           150,
			ParticipacaoCartao:   69.3,
			ParticipacaoDinheiro: 7.7,
			ParticipacaoPix:      23,
			MelhorDiaSemana:      &domain.BestWeekday{DiaSemana: "Sábado", Media: 300},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sales/statistics?rollingDays=7", nil)
	rec := httptest.NewRecorder()

	GetSalesStatistics(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		domain.SalesStatistics
		Formatado map[string]string `json:"formatado"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, 650.0, response.TotalGeral)
	assert.Equal(t, 3, response.DiasComVendas)

	// Os cartões usam a versão formatada em moeda brasileira
	assert.Equal(t, "R$ 650,00", response.Formatado["total_geral"])
	assert.Equal(t, "R$ 200,00", response.Formatado["vendas_hoje"])
	assert.Equal(t, "R$ 216,67", response.Formatado["media_diaria"])
	assert.Equal(t, "69.3%", response.Formatado["participacao_cartao"])
	assert.Equal(t, "23.0%", response.Formatado["participacao_pix"])
}
