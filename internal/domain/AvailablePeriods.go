package domain

// AvailablePeriods lista os períodos presentes na planilha para montagem dos
// seletores de filtro, junto com as ordens fixas de exibição.
type AvailablePeriods struct {
	Years  []int `json:"years"`  // Anos distintos, em ordem crescente
	Months []int `json:"months"` // Meses distintos (1-12), em ordem de calendário

	DiasSemana []string `json:"dias_semana"` // Ordem fixa de exibição dos dias
	Meses      []string `json:"meses"`       // Ordem fixa de exibição dos meses

	// DefaultFilters é a seleção inicial sugerida à apresentação:
	// ano e mês correntes com janela móvel de 7 dias.
	DefaultFilters SaleFilters `json:"default_filters"`
}

// SalesTable é o retrato colunar do conjunto filtrado consumido pela
// apresentação, mais as últimas vendas em formato de registros para a tabela.
type SalesTable struct {
	Datas          []string  `json:"datas"`
	Cartao         []float64 `json:"cartao"`
	Dinheiro       []float64 `json:"dinheiro"`
	Pix            []float64 `json:"pix"`
	Totais         []float64 `json:"totais"`
	DiasSemana     []string  `json:"dias_semana"`
	TotalRegistros int       `json:"total_registros"`
	SomaTotal      float64   `json:"soma_total"`

	UltimasVendas []NormalizedSale `json:"ultimas_vendas"`
	Filters       SaleFilters      `json:"filtros"`
}
