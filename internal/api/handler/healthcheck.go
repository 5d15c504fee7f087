package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// SheetsHealthcheckHandler verifica se a planilha de vendas está acessível
// com a credencial configurada. Útil para diagnosticar problemas de
// permissão sem esperar a próxima recarga agendada.
func SheetsHealthcheckHandler(integrator sheets.SheetsIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connected, err := integrator.CheckConnection(r.Context())
		if err != nil || !connected {
			if err != nil {
				logrus.WithError(err).Error("healthcheck: falha de conexão com a planilha")
			}

			apiErrors.WriteError(w, apiErrors.ErrSpreadsheetConnect, "Erro de conexão com a planilha.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]any{
			"connected":  true,
			"checked_at": time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to sheets healthcheck")
		}
	})
}
