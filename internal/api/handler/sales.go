package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/clipsburger/sales-dashboard-api/pkg/apiErrors"
	"github.com/clipsburger/sales-dashboard-api/pkg/log"
)

// GetSales retorna o retrato colunar das vendas filtradas, pronto para a
// tabela e os seletores da apresentação
func GetSales(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := saleFiltersFromQuery(w, r)
		if !ok {
			return
		}

		table, err := service.GetSalesTable(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("sales: failed to build sales table")
			writeDashboardError(w, err, "Erro ao montar a tabela de vendas")
			return
		}

		logger.WithFields(log.Fields{
			"registros": table.TotalRegistros,
			"soma":      table.SomaTotal,
		}).Debug("sales: sales table built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logger.WithError(err).Error("sales: failed to encode sales table")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar a resposta", nil)
		}
	})
}

// RegisterSale grava um novo registro de venda na planilha e devolve o
// comprovante com o snapshot já recarregado
func RegisterSale(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var submission domain.SaleSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			logger.WithError(err).Warn("sales: invalid submission payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		receipt, err := service.RegisterSale(r.Context(), submission)
		if err != nil {
			logger.WithFields(log.Fields{
				"data":  submission.Data,
				"error": err.Error(),
			}).Warn("sales: submission rejected")

			writeDashboardError(w, err, "Erro ao registrar a venda")
			return
		}

		logger.WithFields(log.Fields{
			"id":    receipt.ID,
			"data":  receipt.Data,
			"total": receipt.Total,
		}).Info("sales: sale registered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logger.WithError(err).Error("sales: failed to encode receipt")
		}
	})
}

// saleFiltersFromQuery interpreta os filtros da query string (listas de
// inteiros separadas por vírgula). Em caso de valor inválido a resposta de
// erro já é escrita e o segundo retorno vem false.
func saleFiltersFromQuery(w http.ResponseWriter, r *http.Request) (domain.SaleFilters, bool) {
	query := r.URL.Query()
	filters := domain.SaleFilters{}

	params := []struct {
		name   string
		target *[]int
	}{
		{"years", &filters.Years},
		{"months", &filters.Months},
		{"rollingDays", &filters.RollingDays},
	}

	for _, param := range params {
		values, err := parseIntList(query.Get(param.name))
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"param": param.name,
				"value": query.Get(param.name),
				"error": err.Error(),
			}).Warn("sales: invalid filter parameter")

			message := fmt.Sprintf("Parâmetro %s inválido. Use números inteiros separados por vírgula.", param.name)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
			return filters, false
		}

		*param.target = values
	}

	return filters, true
}

// parseIntList converte uma lista separada por vírgulas em inteiros.
// Entradas vazias não restringem nada e viram nil.
func parseIntList(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		value, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// writeDashboardError traduz erros do painel para a resposta HTTP padronizada
func writeDashboardError(w http.ResponseWriter, err error, fallback string) {
	// Tentar fazer cast para DashboardError para obter o código
	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	// Verificar tipos específicos de erros de validação
	switch {
	case errors.Is(err, dashboard.ErrDateRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Por favor, selecione uma data.", nil)

	case errors.Is(err, dashboard.ErrNoAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSubmission, "Insira pelo menos um valor.", nil)

	case errors.Is(err, dashboard.ErrNegativeAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSubmission, "Os valores não podem ser negativos.", nil)

	case errors.Is(err, dashboard.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD.", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
