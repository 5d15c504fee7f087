package domain

import "time"

// DailyTotal é a soma das vendas de uma data
type DailyTotal struct {
	Data  time.Time `json:"data"`
	Total float64   `json:"total"`
}

// WeekdayAverage é a média das vendas de um dia da semana
type WeekdayAverage struct {
	DiaSemana string  `json:"dia_semana"`
	Media     float64 `json:"media"`
}

// BestWeekday identifica o dia da semana com a maior média de vendas
type BestWeekday struct {
	DiaSemana string  `json:"dia_semana"`
	Media     float64 `json:"media"`
}

// PaymentMethodTotals são as somas por meio de pagamento. Métodos zerados
// permanecem no agregado; a apresentação decide se os exibe.
type PaymentMethodTotals struct {
	Cartao   float64 `json:"cartao"`
	Dinheiro float64 `json:"dinheiro"`
	Pix      float64 `json:"pix"`
}

// NonZero retorna apenas os métodos com valor positivo, na ordem fixa
// cartão, dinheiro, pix (uso típico: gráfico de pizza).
func (p PaymentMethodTotals) NonZero() []PaymentMethodSlice {
	slices := make([]PaymentMethodSlice, 0, 3)
	if p.Cartao > 0 {
		slices = append(slices, PaymentMethodSlice{Metodo: "Cartão", Valor: p.Cartao})
	}
	if p.Dinheiro > 0 {
		slices = append(slices, PaymentMethodSlice{Metodo: "Dinheiro", Valor: p.Dinheiro})
	}
	if p.Pix > 0 {
		slices = append(slices, PaymentMethodSlice{Metodo: "Pix", Valor: p.Pix})
	}
	return slices
}

// PaymentMethodSlice é uma fatia nomeada do total por meio de pagamento
type PaymentMethodSlice struct {
	Metodo string  `json:"metodo"`
	Valor  float64 `json:"valor"`
}

// CumulativePoint é um ponto da série de acumulação de capital
type CumulativePoint struct {
	Data      time.Time `json:"data"`
	Acumulado float64   `json:"acumulado"`
}

// MonthlyTotals são as somas por meio de pagamento de um mês (chave AnoMes)
type MonthlyTotals struct {
	AnoMes   string  `json:"ano_mes"`
	Cartao   float64 `json:"cartao"`
	Dinheiro float64 `json:"dinheiro"`
	Pix      float64 `json:"pix"`
	Total    float64 `json:"total"`
}

// HistogramBucket é uma faixa de valores da distribuição de vendas
type HistogramBucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// SalesInsights reúne todos os agregados consumidos pelos gráficos do painel
type SalesInsights struct {
	VendasDiarias      []DailyTotal         `json:"vendas_diarias"`
	MediaPorDiaSemana  []WeekdayAverage     `json:"media_por_dia_semana"`
	MediaDiaSemanaFull []WeekdayAverage     `json:"media_por_dia_semana_completa"`
	MelhorDiaSemana    *BestWeekday         `json:"melhor_dia_semana,omitempty"`
	TotaisPorMetodo    PaymentMethodTotals  `json:"totais_por_metodo"`
	MetodosAtivos      []PaymentMethodSlice `json:"metodos_ativos"`
	Acumulado          []CumulativePoint    `json:"acumulado"`
	EvolucaoMensal     []MonthlyTotals      `json:"evolucao_mensal"`
	Distribuicao       []HistogramBucket    `json:"distribuicao"`
	TotalRegistros     int                  `json:"total_registros"`
	Filters            SaleFilters          `json:"filtros"`
}

// SalesStatistics são as métricas resumidas das abas de análise e estatísticas
type SalesStatistics struct {
	TotalGeral       float64 `json:"total_geral"`
	VendasHoje       float64 `json:"vendas_hoje"`
	MediaDiaria      float64 `json:"media_diaria"`
	DiasComVendas    int     `json:"dias_com_vendas"`
	TotalRegistros   int     `json:"total_registros"`
	MediaPorRegistro float64 `json:"media_por_registro"`
	MaiorVenda       float64 `json:"maior_venda"`
	MenorVenda       float64 `json:"menor_venda"`

	// Participação percentual de cada meio de pagamento sobre o total geral
	ParticipacaoCartao   float64 `json:"participacao_cartao"`
	ParticipacaoDinheiro float64 `json:"participacao_dinheiro"`
	ParticipacaoPix      float64 `json:"participacao_pix"`

	MelhorDiaSemana *BestWeekday `json:"melhor_dia_semana,omitempty"`
}
