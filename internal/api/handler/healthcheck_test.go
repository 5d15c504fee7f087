package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sheetsmocks "github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
)

func TestSheetsHealthcheckHandler(t *testing.T) {
	t.Run("Deve confirmar quando a planilha está acessível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)

		integrator.EXPECT().CheckConnection(gomock.Any()).Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthcheck/sheets", nil)
		rec := httptest.NewRecorder()

		SheetsHealthcheckHandler(integrator).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response struct {
			Connected bool `json:"connected"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Connected)
	})

	t.Run("Deve devolver indisponibilidade quando a conexão falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)

		integrator.EXPECT().
			CheckConnection(gomock.Any()).
			Return(false, errors.New("oauth2: cannot fetch token"))

		req := httptest.NewRequest(http.MethodGet, "/healthcheck/sheets", nil)
		rec := httptest.NewRecorder()

		SheetsHealthcheckHandler(integrator).ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrSpreadsheetConnect, apiErr.Code)
		assert.Equal(t, "Erro de conexão com a planilha.", apiErr.Message)
	})

	t.Run("Deve devolver indisponibilidade quando a planilha não responde", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)

		integrator.EXPECT().CheckConnection(gomock.Any()).Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/healthcheck/sheets", nil)
		rec := httptest.NewRecorder()

		SheetsHealthcheckHandler(integrator).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
