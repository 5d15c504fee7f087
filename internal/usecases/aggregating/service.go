package aggregating

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
)

// Quantidade fixa de faixas do histograma de distribuição de vendas
const histogramBins = 20

// Aggregator reúne as funções de agrupamento e redução usadas pelos gráficos
// e cartões do painel. Todas toleram conjuntos vazios devolvendo o marcador
// de ausência documentado (fatia vazia, struct zerada ou nil), nunca pânico.
type Aggregator interface {
	DailyTotals(sales []domain.NormalizedSale) []domain.DailyTotal
	WeekdayAverages(sales []domain.NormalizedSale, zeroFill bool) []domain.WeekdayAverage
	BestWeekday(sales []domain.NormalizedSale) *domain.BestWeekday
	PaymentMethodTotals(sales []domain.NormalizedSale) domain.PaymentMethodTotals
	CumulativeTotals(sales []domain.NormalizedSale) []domain.CumulativePoint
	MonthlyEvolution(sales []domain.NormalizedSale) []domain.MonthlyTotals
	Histogram(sales []domain.NormalizedSale) []domain.HistogramBucket
	Statistics(sales []domain.NormalizedSale, today time.Time) domain.SalesStatistics
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// DailyTotals soma o total vendido em cada data, em ordem crescente de data
func (s *Service) DailyTotals(sales []domain.NormalizedSale) []domain.DailyTotal {
	if len(sales) == 0 {
		return []domain.DailyTotal{}
	}

	byDate := make(map[time.Time]float64)
	for _, sale := range sales {
		byDate[sale.Data] += sale.Total
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	totals := make([]domain.DailyTotal, 0, len(dates))
	for _, date := range dates {
		totals = append(totals, domain.DailyTotal{Data: date, Total: byDate[date]})
	}

	return totals
}

// WeekdayAverages calcula a média do total por dia da semana, reindexada na
// ordem fixa de segunda a domingo. Dias sem vendas ficam ausentes; com
// zeroFill eles aparecem com média zero (variante usada pelo gráfico de
// barras).
func (s *Service) WeekdayAverages(sales []domain.NormalizedSale, zeroFill bool) []domain.WeekdayAverage {
	byWeekday := totalsByWeekday(sales)

	averages := make([]domain.WeekdayAverage, 0, len(domain.DiasSemanaOrdem))
	for _, weekday := range domain.DiasSemanaOrdem {
		totals, ok := byWeekday[weekday]
		if !ok {
			if zeroFill {
				averages = append(averages, domain.WeekdayAverage{DiaSemana: weekday, Media: 0})
			}
			continue
		}

		averages = append(averages, domain.WeekdayAverage{
			DiaSemana: weekday,
			Media:     stat.Mean(totals, nil),
		})
	}

	return averages
}

// BestWeekday devolve o dia da semana com a maior média de vendas. Em caso
// de empate vence o que vem primeiro na ordem fixa; sem dados devolve nil.
func (s *Service) BestWeekday(sales []domain.NormalizedSale) *domain.BestWeekday {
	averages := s.WeekdayAverages(sales, false)
	if len(averages) == 0 {
		return nil
	}

	best := averages[0]
	for _, average := range averages[1:] {
		if average.Media > best.Media {
			best = average
		}
	}

	return &domain.BestWeekday{DiaSemana: best.DiaSemana, Media: best.Media}
}

// PaymentMethodTotals soma cada meio de pagamento. Métodos zerados ficam no
// agregado; quem decide escondê-los é a apresentação.
func (s *Service) PaymentMethodTotals(sales []domain.NormalizedSale) domain.PaymentMethodTotals {
	totals := domain.PaymentMethodTotals{}
	for _, sale := range sales {
		totals.Cartao += sale.Cartao
		totals.Dinheiro += sale.Dinheiro
		totals.Pix += sale.Pix
	}

	return totals
}

// CumulativeTotals produz a série de acumulação de capital: soma corrente do
// total, venda a venda, em ordem crescente de data.
func (s *Service) CumulativeTotals(sales []domain.NormalizedSale) []domain.CumulativePoint {
	if len(sales) == 0 {
		return []domain.CumulativePoint{}
	}

	ordered := make([]domain.NormalizedSale, len(sales))
	copy(ordered, sales)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Data.Before(ordered[j].Data) })

	points := make([]domain.CumulativePoint, 0, len(ordered))
	running := 0.0
	for _, sale := range ordered {
		running += sale.Total
		points = append(points, domain.CumulativePoint{Data: sale.Data, Acumulado: running})
	}

	return points
}

// MonthlyEvolution soma cada meio de pagamento por mês (chave AnoMes), em
// ordem crescente de período.
func (s *Service) MonthlyEvolution(sales []domain.NormalizedSale) []domain.MonthlyTotals {
	if len(sales) == 0 {
		return []domain.MonthlyTotals{}
	}

	byMonth := make(map[string]*domain.MonthlyTotals)
	for _, sale := range sales {
		month, ok := byMonth[sale.AnoMes]
		if !ok {
			month = &domain.MonthlyTotals{AnoMes: sale.AnoMes}
			byMonth[sale.AnoMes] = month
		}

		month.Cartao += sale.Cartao
		month.Dinheiro += sale.Dinheiro
		month.Pix += sale.Pix
		month.Total += sale.Total
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	months := make([]domain.MonthlyTotals, 0, len(keys))
	for _, key := range keys {
		months = append(months, *byMonth[key])
	}

	return months
}

// Histogram distribui os totais positivos em vinte faixas de largura igual
// entre o menor e o maior valor. Quando todos os totais positivos são iguais
// a distribuição degenera numa única faixa.
func (s *Service) Histogram(sales []domain.NormalizedSale) []domain.HistogramBucket {
	positives := make([]float64, 0, len(sales))
	for _, sale := range sales {
		if sale.Total > 0 {
			positives = append(positives, sale.Total)
		}
	}

	if len(positives) == 0 {
		return []domain.HistogramBucket{}
	}

	sort.Float64s(positives)

	min, max := positives[0], positives[len(positives)-1]
	if min == max {
		return []domain.HistogramBucket{{Min: min, Max: max, Count: len(positives)}}
	}

	dividers := make([]float64, histogramBins+1)
	floats.Span(dividers, min, max)

	// stat.Histogram fecha as faixas à direita; o último limite de contagem
	// é empurrado para o próximo float para que o maior total caia na faixa
	// final em vez de estourar.
	edges := make([]float64, len(dividers))
	copy(edges, dividers)
	edges[len(edges)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, edges, positives, nil)

	buckets := make([]domain.HistogramBucket, 0, histogramBins)
	for i, count := range counts {
		buckets = append(buckets, domain.HistogramBucket{
			Min:   dividers[i],
			Max:   dividers[i+1],
			Count: int(count),
		})
	}

	return buckets
}

// Statistics calcula as métricas resumidas das abas de análise e
// estatísticas do painel. A data de referência define o que conta como
// "vendas de hoje".
func (s *Service) Statistics(sales []domain.NormalizedSale, today time.Time) domain.SalesStatistics {
	if len(sales) == 0 {
		return domain.SalesStatistics{}
	}

	totals := make([]float64, 0, len(sales))
	salesToday := 0.0
	minPositive := 0.0

	stats := domain.SalesStatistics{TotalRegistros: len(sales)}

	for _, sale := range sales {
		totals = append(totals, sale.Total)

		stats.TotalGeral += sale.Total
		stats.ParticipacaoCartao += sale.Cartao
		stats.ParticipacaoDinheiro += sale.Dinheiro
		stats.ParticipacaoPix += sale.Pix

		if sameDay(sale.Data, today) {
			salesToday += sale.Total
		}

		if sale.Total > 0 && (minPositive == 0 || sale.Total < minPositive) {
			minPositive = sale.Total
		}
	}

	dailyTotals := s.DailyTotals(sales)
	perDay := make([]float64, 0, len(dailyTotals))
	for _, daily := range dailyTotals {
		perDay = append(perDay, daily.Total)
	}

	stats.VendasHoje = salesToday
	stats.MediaDiaria = stat.Mean(perDay, nil)
	stats.DiasComVendas = len(dailyTotals)
	stats.MediaPorRegistro = stat.Mean(totals, nil)
	stats.MaiorVenda = floats.Max(totals)
	stats.MenorVenda = minPositive
	stats.MelhorDiaSemana = s.BestWeekday(sales)

	// Participações em percentual do total geral; zero quando não há receita
	if stats.TotalGeral > 0 {
		stats.ParticipacaoCartao = stats.ParticipacaoCartao / stats.TotalGeral * 100
		stats.ParticipacaoDinheiro = stats.ParticipacaoDinheiro / stats.TotalGeral * 100
		stats.ParticipacaoPix = stats.ParticipacaoPix / stats.TotalGeral * 100
	} else {
		stats.ParticipacaoCartao = 0
		stats.ParticipacaoDinheiro = 0
		stats.ParticipacaoPix = 0
	}

	return stats
}

// totalsByWeekday agrupa os totais por nome do dia da semana
func totalsByWeekday(sales []domain.NormalizedSale) map[string][]float64 {
	byWeekday := make(map[string][]float64)
	for _, sale := range sales {
		if sale.DiaSemana == "" {
			continue
		}
		byWeekday[sale.DiaSemana] = append(byWeekday[sale.DiaSemana], sale.Total)
	}

	return byWeekday
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
