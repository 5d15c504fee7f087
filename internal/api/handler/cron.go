package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/internal/scheduler"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
)

// CronJobServices contém os serviços agendados que podem ser executados manualmente
type CronJobServices struct {
	SalesReloadService *scheduler.SalesReloadService
}

// RunSalesReload dispara manualmente uma recarga do snapshot de vendas,
// sem esperar o próximo ciclo do agendador
func RunSalesReload(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSalesReload")

		if services.SalesReloadService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga de vendas não disponível", nil)
			return
		}

		services.SalesReloadService.TriggerManualReload()

		// Responder com sucesso; a recarga continua em segundo plano
		response := map[string]any{
			"message": "Recarga de vendas iniciada com sucesso",
			"type":    "sales-reload",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das tarefas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"sales-reload": services.SalesReloadService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
