package filtering

import (
	"slices"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
)

// Filter aplica critérios de período sobre vendas normalizadas
type Filter interface {
	Apply(sales []domain.NormalizedSale, filters domain.SaleFilters) []domain.NormalizedSale
}

type Service struct{}

func NewService() Filter {
	return &Service{}
}

// Apply aplica os critérios na ordem ano, mês e janela móvel. Dimensões
// vazias não restringem nada; a janela móvel é ancorada na data mais
// recente do conjunto já filtrado por ano e mês.
func (s *Service) Apply(sales []domain.NormalizedSale, filters domain.SaleFilters) []domain.NormalizedSale {
	if len(sales) == 0 || filters.IsEmpty() {
		return sales
	}

	filtered := sales

	if len(filters.Years) > 0 {
		filtered = filterBy(filtered, func(sale domain.NormalizedSale) bool {
			return slices.Contains(filters.Years, sale.Ano)
		})
	}

	if len(filters.Months) > 0 {
		filtered = filterBy(filtered, func(sale domain.NormalizedSale) bool {
			return slices.Contains(filters.Months, sale.Mes)
		})
	}

	if days := filters.MaxRollingDays(); days > 0 {
		filtered = filterByRollingDays(filtered, days)
	}

	return filtered
}

// filterByRollingDays mantém as vendas dos últimos N dias contados a partir
// da data mais recente do conjunto recebido (janela inclusiva nas duas pontas)
func filterByRollingDays(sales []domain.NormalizedSale, days int) []domain.NormalizedSale {
	if len(sales) == 0 {
		return sales
	}

	latest := sales[0].Data
	for _, sale := range sales[1:] {
		if sale.Data.After(latest) {
			latest = sale.Data
		}
	}

	start := latest.AddDate(0, 0, -(days - 1))

	return filterBy(sales, func(sale domain.NormalizedSale) bool {
		return !sale.Data.Before(start)
	})
}

func filterBy(sales []domain.NormalizedSale, keep func(domain.NormalizedSale) bool) []domain.NormalizedSale {
	filtered := make([]domain.NormalizedSale, 0, len(sales))
	for _, sale := range sales {
		if keep(sale) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}
