package handler

import (
	"net/http"

	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
	"github.com/clipsburger/sales-dashboard-api/pkg/log"
)

// GetAvailablePeriods lista os anos e meses presentes na planilha e a
// seleção de filtros sugerida para a carga inicial da apresentação
func GetAvailablePeriods(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			logger.WithError(err).Error("periods: failed to list available periods")
			writeDashboardError(w, err, "Erro ao listar os períodos disponíveis")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("periods: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}
