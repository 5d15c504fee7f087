package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
)

func TestService_Normalize_Valores(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.SaleRow
		cartao   float64
		dinheiro float64
		pix      float64
		total    float64
	}{
		{
			name:     "Deve somar os três meios de pagamento no total",
			row:      domain.SaleRow{Data: "09/03/2024", Cartao: "100", Dinheiro: "50", Pix: "25.5"},
			cartao:   100,
			dinheiro: 50,
			pix:      25.5,
			total:    175.5,
		},
		{
			name:     "Deve aceitar o formato brasileiro com separador de milhar",
			row:      domain.SaleRow{Data: "09/03/2024", Cartao: "1.234,56", Dinheiro: "12,5", Pix: ""},
			cartao:   1234.56,
			dinheiro: 12.5,
			pix:      0,
			total:    1247.06,
		},
		{
			name:     "Valores vazios e não numéricos viram zero",
			row:      domain.SaleRow{Data: "09/03/2024", Cartao: "", Dinheiro: "abc", Pix: "100"},
			cartao:   0,
			dinheiro: 0,
			pix:      100,
			total:    100,
		},
		{
			name:     "Valores negativos viram zero",
			row:      domain.SaleRow{Data: "09/03/2024", Cartao: "-10", Dinheiro: "50", Pix: "-0.01"},
			cartao:   0,
			dinheiro: 50,
			pix:      0,
			total:    50,
		},
		{
			name:     "Deve ignorar espaços ao redor dos valores",
			row:      domain.SaleRow{Data: "09/03/2024", Cartao: " 100 ", Dinheiro: "  ", Pix: "25"},
			cartao:   100,
			dinheiro: 0,
			pix:      25,
			total:    125,
		},
	}

	service := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := service.Normalize([]domain.SaleRow{tt.row})

			assert.Len(t, sales, 1)
			assert.Equal(t, tt.cartao, sales[0].Cartao)
			assert.Equal(t, tt.dinheiro, sales[0].Dinheiro)
			assert.Equal(t, tt.pix, sales[0].Pix)
			assert.Equal(t, tt.total, sales[0].Total)
		})
	}
}

func TestService_Normalize_CamposDerivados(t *testing.T) {
	service := NewService()

	// 09/03/2024 caiu num sábado
	sales := service.Normalize([]domain.SaleRow{
		{Data: "09/03/2024", Cartao: "100", Dinheiro: "50", Pix: "25"},
	})

	assert.Len(t, sales, 1)

	sale := sales[0]
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), sale.Data)
	assert.Equal(t, 2024, sale.Ano)
	assert.Equal(t, 3, sale.Mes)
	assert.Equal(t, "Março", sale.NomeMes)
	assert.Equal(t, "Sábado", sale.DiaSemana)
	assert.Equal(t, "09/03/2024", sale.DataFormatada)
	assert.Equal(t, "2024-03", sale.AnoMes)
	assert.Equal(t, 9, sale.DiaDoMes)
}

func TestService_Normalize_Datas(t *testing.T) {
	tests := []struct {
		name     string
		rows     []domain.SaleRow
		expected []time.Time
	}{
		{
			name: "Deve interpretar datas no formato estrito DD/MM/YYYY",
			rows: []domain.SaleRow{
				{Data: "01/01/2024", Cartao: "10"},
				{Data: "15/02/2024", Cartao: "20"},
			},
			expected: []time.Time{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Deve descartar linhas sem data reconhecível mantendo as demais",
			rows: []domain.SaleRow{
				{Data: "01/01/2024", Cartao: "10"},
				{Data: "sem data", Cartao: "20"},
				{Data: "", Cartao: "30"},
			},
			expected: []time.Time{
				time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Deve usar a passada tolerante quando nenhuma data é estrita",
			rows: []domain.SaleRow{
				{Data: "9/3/2024", Cartao: "10"},
				{Data: "2024-03-10", Cartao: "20"},
			},
			expected: []time.Time{
				time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Passada tolerante não é usada quando alguma data estrita existe",
			rows: []domain.SaleRow{
				{Data: "09/03/2024", Cartao: "10"},
				{Data: "2024-03-10", Cartao: "20"},
			},
			expected: []time.Time{
				time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "Resultado sempre ordenado por data ascendente",
			rows: []domain.SaleRow{
				{Data: "10/03/2024", Cartao: "30"},
				{Data: "08/03/2024", Cartao: "10"},
				{Data: "09/03/2024", Cartao: "20"},
			},
			expected: []time.Time{
				time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	service := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := service.Normalize(tt.rows)

			assert.Len(t, sales, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected, sales[i].Data)
			}
		})
	}
}

func TestService_Normalize_EntradaVazia(t *testing.T) {
	service := NewService()

	assert.Empty(t, service.Normalize(nil))
	assert.Empty(t, service.Normalize([]domain.SaleRow{}))
}
