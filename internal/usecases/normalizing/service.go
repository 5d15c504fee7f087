package normalizing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// Normalizer converte linhas brutas da planilha em vendas normalizadas
type Normalizer interface {
	Normalize(rows []domain.SaleRow) []domain.NormalizedSale
}

type Service struct{}

func NewService() Normalizer {
	return &Service{}
}

// Normalize aplica a coerção monetária, interpreta as datas e calcula os
// campos derivados. Linhas sem data reconhecível são descartadas; valores
// monetários inválidos viram zero e nunca descartam a linha.
func (s *Service) Normalize(rows []domain.SaleRow) []domain.NormalizedSale {
	if len(rows) == 0 {
		return []domain.NormalizedSale{}
	}

	dates := parseDates(rows)

	sales := make([]domain.NormalizedSale, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		date := dates[i]
		if date == nil {
			dropped++
			continue
		}

		cartao := parseAmount(row.Cartao)
		dinheiro := parseAmount(row.Dinheiro)
		pix := parseAmount(row.Pix)

		sales = append(sales, domain.NormalizedSale{
			Data:          *date,
			Cartao:        cartao,
			Dinheiro:      dinheiro,
			Pix:           pix,
			Total:         cartao + dinheiro + pix,
			Ano:           date.Year(),
			Mes:           int(date.Month()),
			NomeMes:       domain.NomeMes(int(date.Month())),
			DiaSemana:     domain.NomeDiaSemana(*date),
			DataFormatada: utils.FormatDateBR(*date),
			AnoMes:        date.Format("2006-01"),
			DiaDoMes:      date.Day(),
		})
	}

	if dropped > 0 {
		logrus.WithField("linhas_descartadas", dropped).Debug("Linhas sem data reconhecível foram descartadas na normalização")
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Data.Before(sales[j].Data)
	})

	return sales
}

// parseDates interpreta as datas de todas as linhas. A primeira passada usa
// apenas o formato estrito DD/MM/YYYY; quando nenhuma linha é reconhecida
// por ela, uma segunda passada tenta os formatos alternativos com o dia
// antes do mês.
func parseDates(rows []domain.SaleRow) []*time.Time {
	dates := make([]*time.Time, len(rows))
	anyStrict := false

	for i, row := range rows {
		if t, err := utils.ParseDateBR(row.Data); err == nil {
			dates[i] = &t
			anyStrict = true
		}
	}

	if anyStrict {
		return dates
	}

	for i, row := range rows {
		if t, err := utils.ParseDateBRLenient(row.Data); err == nil {
			dates[i] = &t
		}
	}

	return dates
}

// parseAmount converte o texto de uma célula monetária para float64. Aceita
// o formato com ponto decimal (1234.56) e o formato brasileiro com separador
// de milhar (1.234,56). Valores vazios, não numéricos ou negativos viram 0.
func parseAmount(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		value, err = strconv.ParseFloat(normalizeBRNumber(trimmed), 64)
		if err != nil {
			return 0
		}
	}

	if value < 0 {
		return 0
	}

	return value
}

// normalizeBRNumber remove o separador de milhar e troca a vírgula decimal
// por ponto (1.234,56 -> 1234.56)
func normalizeBRNumber(raw string) string {
	if !strings.Contains(raw, ",") {
		return raw
	}

	cleaned := strings.ReplaceAll(raw, ".", "")
	return strings.Replace(cleaned, ",", ".", 1)
}
