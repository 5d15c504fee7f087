package handler

import (
	"net/http"

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/clipsburger/sales-dashboard-api/internal/api/handler/router"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
)

func Healthcheck(integrator sheets.SheetsIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck/sheets",
			Method:  http.MethodGet,
			Handler: SheetsHealthcheckHandler(integrator),
		},
	}
}

func Sales(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/sales",
			Method:  http.MethodPost,
			Handler: RegisterSale(service),
		},
		{
			Path:    "/sales/insights",
			Method:  http.MethodGet,
			Handler: GetSalesInsights(service),
		},
		{
			Path:    "/sales/statistics",
			Method:  http.MethodGet,
			Handler: GetSalesStatistics(service),
		},
		{
			Path:    "/sales/financial-report",
			Method:  http.MethodPost,
			Handler: GetFinancialReport(service),
		},
		{
			Path:    "/sales/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/sales-reload",
			Method:  http.MethodPost,
			Handler: RunSalesReload(services),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
