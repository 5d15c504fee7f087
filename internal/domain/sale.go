package domain

import "time"

// Ordem fixa dos dias da semana e dos meses, usada para ordenação de
// agrupamentos e gráficos (ordem de calendário, nunca alfabética).
var (
	DiasSemanaOrdem = []string{
		"Segunda-feira",
		"Terça-feira",
		"Quarta-feira",
		"Quinta-feira",
		"Sexta-feira",
		"Sábado",
		"Domingo",
	}

	MesesOrdem = []string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
)

// MesInvalido é o valor sentinela para meses fora do intervalo 1-12
const MesInvalido = "Inválido"

// NomeMes retorna o nome do mês (1-12) ou o sentinela para valores inválidos
func NomeMes(mes int) string {
	if mes < 1 || mes > 12 {
		return MesInvalido
	}
	return MesesOrdem[mes-1]
}

// NomeDiaSemana retorna o nome do dia da semana com a semana iniciando na segunda-feira
func NomeDiaSemana(t time.Time) string {
	// time.Weekday tem domingo como 0; o índice aqui é segunda=0 .. domingo=6
	return DiasSemanaOrdem[(int(t.Weekday())+6)%7]
}

// IndiceDiaSemana retorna a posição do dia na ordem fixa, ou -1 se desconhecido
func IndiceDiaSemana(nome string) int {
	for i, dia := range DiasSemanaOrdem {
		if dia == nome {
			return i
		}
	}
	return -1
}

// IndiceMes retorna a posição do mês na ordem fixa, ou -1 se desconhecido
func IndiceMes(nome string) int {
	for i, mes := range MesesOrdem {
		if mes == nome {
			return i
		}
	}
	return -1
}

// SaleRow é uma linha bruta da planilha, indexada pelos nomes das colunas.
// Os valores chegam como texto e só são convertidos pelo normalizador.
type SaleRow struct {
	Data     string `json:"data"`
	Cartao   string `json:"cartao"`
	Dinheiro string `json:"dinheiro"`
	Pix      string `json:"pix"`
}

// NormalizedSale é uma venda normalizada com os campos derivados calculados.
// Total é sempre a soma exata de Cartao + Dinheiro + Pix.
type NormalizedSale struct {
	Data          time.Time `json:"data"`
	Cartao        float64   `json:"cartao"`
	Dinheiro      float64   `json:"dinheiro"`
	Pix           float64   `json:"pix"`
	Total         float64   `json:"total"`
	Ano           int       `json:"ano"`
	Mes           int       `json:"mes"`
	NomeMes       string    `json:"nome_mes"`
	DiaSemana     string    `json:"dia_semana"`
	DataFormatada string    `json:"data_formatada"`
	AnoMes        string    `json:"ano_mes"`
	DiaDoMes      int       `json:"dia_do_mes"`
}

// SaleSubmission é o registro de venda enviado pela apresentação.
// Data chega no formato YYYY-MM-DD e é gravada na planilha como DD/MM/YYYY.
type SaleSubmission struct {
	Data     string  `json:"data"`
	Cartao   float64 `json:"cartao"`
	Dinheiro float64 `json:"dinheiro"`
	Pix      float64 `json:"pix"`
}

// Total retorna a soma dos três meios de pagamento
func (s SaleSubmission) Total() float64 {
	return s.Cartao + s.Dinheiro + s.Pix
}

// SaleReceipt confirma um registro de venda aceito e gravado na planilha
type SaleReceipt struct {
	ID       string  `json:"id"`
	Data     string  `json:"data"`
	Cartao   float64 `json:"cartao"`
	Dinheiro float64 `json:"dinheiro"`
	Pix      float64 `json:"pix"`
	Total    float64 `json:"total"`
	Message  string  `json:"message"`
}
