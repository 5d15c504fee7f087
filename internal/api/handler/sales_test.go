package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard/mocks"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
)

func TestGetSales(t *testing.T) {
	t.Run("Deve repassar os filtros da query string e devolver a tabela", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		wantFilters := domain.SaleFilters{
			Years:       []int{2024},
			Months:      []int{3},
			RollingDays: []int{7, 30},
		}

		service.EXPECT().
			GetSalesTable(gomock.Any(), wantFilters).
			Return(&domain.SalesTable{
				Datas:          []string{"01/03/2024"},
				Cartao:         []float64{100},
				Dinheiro:       []float64{50},
				Pix:            []float64{0},
				Totais:         []float64{150},
				DiasSemana:     []string{"Sexta-feira"},
				TotalRegistros: 1,
				SomaTotal:      150,
				Filters:        wantFilters,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sales?years=2024&months=3&rollingDays=7,30", nil)
		rec := httptest.NewRecorder()

		GetSales(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var table domain.SalesTable
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
		assert.Equal(t, 1, table.TotalRegistros)
		assert.Equal(t, 150.0, table.SomaTotal)
		assert.Equal(t, []string{"01/03/2024"}, table.Datas)
	})

	t.Run("Deve rejeitar filtro com valor não numérico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/sales?years=abc", nil)
		rec := httptest.NewRecorder()

		GetSales(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
		assert.Equal(t, "Parâmetro years inválido. Use números inteiros separados por vírgula.", apiErr.Message)
	})

	t.Run("Deve ignorar itens vazios na lista de filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		service.EXPECT().
			GetSalesTable(gomock.Any(), domain.SaleFilters{Years: []int{2023, 2024}}).
			Return(&domain.SalesTable{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/sales?years=2023,,2024", nil)
		rec := httptest.NewRecorder()

		GetSales(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegisterSale(t *testing.T) {
	t.Run("Deve registrar a venda e devolver o comprovante", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		submission := domain.SaleSubmission{Data: "2024-03-15", Cartao: 80, Dinheiro: 20.5, Pix: 100}
		service.EXPECT().
			RegisterSale(gomock.Any(), submission).
			Return(&domain.SaleReceipt{
				ID:       "Ab12Cd",
				Data:     "15/03/2024",
				Cartao:   80,
				Dinheiro: 20.5,
				Pix:      100,
				Total:    200.5,
				Message:  "Dados registrados com sucesso! ✅",
			}, nil)

		body := strings.NewReader(`{"data":"2024-03-15","cartao":80,"dinheiro":20.5,"pix":100}`)
		req := httptest.NewRequest(http.MethodPost, "/sales", body)
		rec := httptest.NewRecorder()

		RegisterSale(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var receipt domain.SaleReceipt
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
		assert.Equal(t, "Ab12Cd", receipt.ID)
		assert.Equal(t, "15/03/2024", receipt.Data)
		assert.Equal(t, 200.5, receipt.Total)
		assert.Equal(t, "Dados registrados com sucesso! ✅", receipt.Message)
	})

	t.Run("Deve rejeitar corpo que não é JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader("{data:"))
		rec := httptest.NewRecorder()

		RegisterSale(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "Deve traduzir a falta de data para o código de dados obrigatórios",
			serviceErr:  dashboard.ErrDateRequired,
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrMissingRequiredData,
			wantMessage: "Por favor, selecione uma data.",
		},
		{
			name:        "Deve traduzir a venda sem valores para o código de registro inválido",
			serviceErr:  dashboard.ErrNoAmount,
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrInvalidSubmission,
			wantMessage: "Insira pelo menos um valor.",
		},
		{
			name:        "Deve traduzir valores negativos para o código de registro inválido",
			serviceErr:  dashboard.ErrNegativeAmount,
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrInvalidSubmission,
			wantMessage: "Os valores não podem ser negativos.",
		},
		{
			name:        "Deve traduzir data mal formatada para o código de formato inválido",
			serviceErr:  dashboard.ErrInvalidDate,
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrInvalidFormat,
			wantMessage: "Data inválida. Use o formato YYYY-MM-DD.",
		},
		{
			name:        "Deve propagar o código dos erros de planilha",
			serviceErr:  dashboard.NewDashboardError(dashboard.ErrSpreadsheetWrite, apiErrors.ErrSpreadsheetWrite, "Falha ao gravar a venda na planilha"),
			wantStatus:  http.StatusBadGateway,
			wantCode:    apiErrors.ErrSpreadsheetWrite,
			wantMessage: "error appending sale to spreadsheet: Falha ao gravar a venda na planilha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboardService(ctrl)

			service.EXPECT().
				RegisterSale(gomock.Any(), gomock.Any()).
				Return(nil, tt.serviceErr)

			body := strings.NewReader(`{"data":"2024-03-15","cartao":10}`)
			req := httptest.NewRequest(http.MethodPost, "/sales", body)
			rec := httptest.NewRecorder()

			RegisterSale(service).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}
