package domain

// SaleFilters define os critérios de filtragem aplicados sobre as vendas
// normalizadas. Dimensões vazias não restringem nada (funcionam como
// identidade); dimensões preenchidas são combinadas com E lógico.
type SaleFilters struct {
	Years  []int `json:"years,omitempty"`
	Months []int `json:"months,omitempty"`

	// RollingDays é a janela móvel em dias ancorada na data mais recente do
	// conjunto. Quando mais de um valor é informado, apenas o maior tem
	// efeito; os demais são dicas de apresentação.
	RollingDays []int `json:"rolling_days,omitempty"`
}

// IsEmpty indica se nenhum critério foi informado
func (f SaleFilters) IsEmpty() bool {
	return len(f.Years) == 0 && len(f.Months) == 0 && len(f.RollingDays) == 0
}

// MaxRollingDays retorna a maior janela solicitada, ou 0 quando não há janela
func (f SaleFilters) MaxRollingDays() int {
	max := 0
	for _, d := range f.RollingDays {
		if d > max {
			max = d
		}
	}
	return max
}
