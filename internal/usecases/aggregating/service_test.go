package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
)

func saleAt(date time.Time, cartao, dinheiro, pix float64) domain.NormalizedSale {
	return domain.NormalizedSale{
		Data:      date,
		Cartao:    cartao,
		Dinheiro:  dinheiro,
		Pix:       pix,
		Total:     cartao + dinheiro + pix,
		Ano:       date.Year(),
		Mes:       int(date.Month()),
		NomeMes:   domain.NomeMes(int(date.Month())),
		DiaSemana: domain.NomeDiaSemana(date),
		AnoMes:    date.Format("2006-01"),
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestService_DailyTotals(t *testing.T) {
	service := NewService()

	t.Run("Deve somar por data em ordem crescente", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 10), 100, 0, 0),
			saleAt(day(2024, 3, 8), 50, 0, 0),
			saleAt(day(2024, 3, 10), 0, 30, 0),
			saleAt(day(2024, 3, 9), 0, 0, 20),
		}

		totals := service.DailyTotals(sales)

		assert.Equal(t, []domain.DailyTotal{
			{Data: day(2024, 3, 8), Total: 50},
			{Data: day(2024, 3, 9), Total: 20},
			{Data: day(2024, 3, 10), Total: 130},
		}, totals)
	})

	t.Run("Conjunto vazio retorna fatia vazia", func(t *testing.T) {
		assert.Empty(t, service.DailyTotals(nil))
	})
}

func TestService_WeekdayAverages(t *testing.T) {
	service := NewService()

	// 04/03/2024 é segunda-feira; 09/03/2024 é sábado
	sales := []domain.NormalizedSale{
		saleAt(day(2024, 3, 4), 100, 0, 0),
		saleAt(day(2024, 3, 11), 200, 0, 0),
		saleAt(day(2024, 3, 9), 80, 0, 0),
	}

	t.Run("Médias reindexadas na ordem fixa, dias sem venda ausentes", func(t *testing.T) {
		averages := service.WeekdayAverages(sales, false)

		assert.Equal(t, []domain.WeekdayAverage{
			{DiaSemana: "Segunda-feira", Media: 150},
			{DiaSemana: "Sábado", Media: 80},
		}, averages)
	})

	t.Run("Com zeroFill todos os sete dias aparecem", func(t *testing.T) {
		averages := service.WeekdayAverages(sales, true)

		assert.Len(t, averages, 7)
		assert.Equal(t, domain.DiasSemanaOrdem[0], averages[0].DiaSemana)
		assert.Equal(t, 150.0, averages[0].Media)
		assert.Equal(t, "Terça-feira", averages[1].DiaSemana)
		assert.Equal(t, 0.0, averages[1].Media)
		assert.Equal(t, "Domingo", averages[6].DiaSemana)
		assert.Equal(t, 0.0, averages[6].Media)
	})

	t.Run("Conjunto vazio retorna fatia vazia sem zeroFill", func(t *testing.T) {
		assert.Empty(t, service.WeekdayAverages(nil, false))
	})
}

func TestService_BestWeekday(t *testing.T) {
	service := NewService()

	t.Run("Deve escolher o dia com a maior média", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 4), 100, 0, 0), // Segunda-feira
			saleAt(day(2024, 3, 9), 300, 0, 0), // Sábado
		}

		best := service.BestWeekday(sales)

		assert.NotNil(t, best)
		assert.Equal(t, "Sábado", best.DiaSemana)
		assert.Equal(t, 300.0, best.Media)
	})

	t.Run("Empate é decidido pela ordem fixa da semana", func(t *testing.T) {
		// Sábado e segunda-feira com a mesma média; segunda vem antes na ordem
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 9), 100, 0, 0), // Sábado
			saleAt(day(2024, 3, 4), 100, 0, 0), // Segunda-feira
		}

		best := service.BestWeekday(sales)

		assert.NotNil(t, best)
		assert.Equal(t, "Segunda-feira", best.DiaSemana)
	})

	t.Run("Sem dados retorna nil", func(t *testing.T) {
		assert.Nil(t, service.BestWeekday(nil))
		assert.Nil(t, service.BestWeekday([]domain.NormalizedSale{}))
	})
}

func TestService_PaymentMethodTotals(t *testing.T) {
	service := NewService()

	t.Run("Deve somar cada meio de pagamento", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 8), 100, 50, 0),
			saleAt(day(2024, 3, 9), 200, 25, 0),
		}

		totals := service.PaymentMethodTotals(sales)

		assert.Equal(t, domain.PaymentMethodTotals{Cartao: 300, Dinheiro: 75, Pix: 0}, totals)
	})

	t.Run("Métodos zerados permanecem no agregado e saem do recorte ativo", func(t *testing.T) {
		totals := domain.PaymentMethodTotals{Cartao: 300, Dinheiro: 75, Pix: 0}

		active := totals.NonZero()

		assert.Equal(t, []domain.PaymentMethodSlice{
			{Metodo: "Cartão", Valor: 300},
			{Metodo: "Dinheiro", Valor: 75},
		}, active)
	})

	t.Run("Conjunto vazio retorna agregado zerado", func(t *testing.T) {
		assert.Equal(t, domain.PaymentMethodTotals{}, service.PaymentMethodTotals(nil))
	})
}

func TestService_CumulativeTotals(t *testing.T) {
	service := NewService()

	t.Run("Soma corrente em ordem crescente de data", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 10), 30, 0, 0),
			saleAt(day(2024, 3, 8), 100, 0, 0),
			saleAt(day(2024, 3, 9), 20, 0, 0),
		}

		points := service.CumulativeTotals(sales)

		assert.Equal(t, []domain.CumulativePoint{
			{Data: day(2024, 3, 8), Acumulado: 100},
			{Data: day(2024, 3, 9), Acumulado: 120},
			{Data: day(2024, 3, 10), Acumulado: 150},
		}, points)
	})

	t.Run("Conjunto vazio retorna fatia vazia", func(t *testing.T) {
		assert.Empty(t, service.CumulativeTotals(nil))
	})
}

func TestService_MonthlyEvolution(t *testing.T) {
	service := NewService()

	t.Run("Somas por mês em ordem crescente de período", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 2, 10), 100, 10, 0),
			saleAt(day(2024, 1, 5), 50, 0, 25),
			saleAt(day(2024, 2, 20), 0, 30, 5),
		}

		months := service.MonthlyEvolution(sales)

		assert.Equal(t, []domain.MonthlyTotals{
			{AnoMes: "2024-01", Cartao: 50, Dinheiro: 0, Pix: 25, Total: 75},
			{AnoMes: "2024-02", Cartao: 100, Dinheiro: 40, Pix: 5, Total: 145},
		}, months)
	})

	t.Run("Conjunto vazio retorna fatia vazia", func(t *testing.T) {
		assert.Empty(t, service.MonthlyEvolution(nil))
	})
}

func TestService_Histogram(t *testing.T) {
	service := NewService()

	t.Run("Vinte faixas de largura igual entre o menor e o maior total", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 1), 10, 0, 0),
			saleAt(day(2024, 3, 2), 30, 0, 0),
		}

		buckets := service.Histogram(sales)

		assert.Len(t, buckets, 20)
		assert.InDelta(t, 10.0, buckets[0].Min, 1e-9)
		assert.InDelta(t, 30.0, buckets[19].Max, 1e-9)
		assert.Equal(t, 1, buckets[0].Count)
		assert.Equal(t, 1, buckets[19].Count)

		total := 0
		for _, bucket := range buckets {
			total += bucket.Count
		}
		assert.Equal(t, 2, total)
	})

	t.Run("Totais iguais degeneram numa única faixa", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 1), 50, 0, 0),
			saleAt(day(2024, 3, 2), 50, 0, 0),
			saleAt(day(2024, 3, 3), 50, 0, 0),
		}

		buckets := service.Histogram(sales)

		assert.Equal(t, []domain.HistogramBucket{{Min: 50, Max: 50, Count: 3}}, buckets)
	})

	t.Run("Totais zerados ficam fora da distribuição", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 1), 0, 0, 0),
			saleAt(day(2024, 3, 2), 0, 0, 0),
		}

		assert.Empty(t, service.Histogram(sales))
	})

	t.Run("Conjunto vazio retorna fatia vazia", func(t *testing.T) {
		assert.Empty(t, service.Histogram(nil))
	})
}

func TestService_Statistics(t *testing.T) {
	service := NewService()
	today := day(2024, 3, 10)

	t.Run("Deve calcular as métricas resumidas do período", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 8), 100, 50, 0),  // Total 150
			saleAt(day(2024, 3, 9), 200, 0, 100), // Total 300
			saleAt(day(2024, 3, 10), 0, 50, 100), // Total 150, hoje
		}

		stats := service.Statistics(sales, today)

		assert.Equal(t, 600.0, stats.TotalGeral)
		assert.Equal(t, 150.0, stats.VendasHoje)
		assert.Equal(t, 200.0, stats.MediaDiaria)
		assert.Equal(t, 3, stats.DiasComVendas)
		assert.Equal(t, 3, stats.TotalRegistros)
		assert.Equal(t, 200.0, stats.MediaPorRegistro)
		assert.Equal(t, 300.0, stats.MaiorVenda)
		assert.Equal(t, 150.0, stats.MenorVenda)

		assert.Equal(t, 50.0, stats.ParticipacaoCartao)
		assert.InDelta(t, 16.666666, stats.ParticipacaoDinheiro, 1e-4)
		assert.InDelta(t, 33.333333, stats.ParticipacaoPix, 1e-4)

		assert.NotNil(t, stats.MelhorDiaSemana)
		assert.Equal(t, "Sábado", stats.MelhorDiaSemana.DiaSemana)
	})

	t.Run("Menor venda considera apenas totais positivos", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 8), 0, 0, 0),
			saleAt(day(2024, 3, 9), 80, 0, 0),
		}

		stats := service.Statistics(sales, today)

		assert.Equal(t, 80.0, stats.MenorVenda)
	})

	t.Run("Dias com mais de um registro contam uma única vez", func(t *testing.T) {
		sales := []domain.NormalizedSale{
			saleAt(day(2024, 3, 9), 100, 0, 0),
			saleAt(day(2024, 3, 9), 50, 0, 0),
		}

		stats := service.Statistics(sales, today)

		assert.Equal(t, 1, stats.DiasComVendas)
		assert.Equal(t, 150.0, stats.MediaDiaria)
		assert.Equal(t, 75.0, stats.MediaPorRegistro)
	})

	t.Run("Conjunto vazio retorna métricas zeradas", func(t *testing.T) {
		stats := service.Statistics(nil, today)

		assert.Equal(t, domain.SalesStatistics{}, stats)
		assert.Nil(t, stats.MelhorDiaSemana)
	})
}
