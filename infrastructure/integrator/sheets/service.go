package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/clipsburger/sales-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// Nomes das colunas esperadas no cabeçalho da aba de vendas
const (
	columnData     = "Data"
	columnCartao   = "Cartão"
	columnDinheiro = "Dinheiro"
	columnPix      = "Pix"
)

type SheetsIntegrator interface {
	ListSales(ctx context.Context) ([]domain.SaleRow, error)
	AppendSale(ctx context.Context, submission domain.SaleSubmission) error
	CheckConnection(ctx context.Context) (bool, error)
}

type SheetsService struct {
	Client sheetsclient.Client
}

func New(client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{Client: client}
}

// ListSales retorna as linhas de venda brutas da planilha. A primeira linha
// é tratada como cabeçalho e as colunas são localizadas pelo nome, então a
// ordem delas na planilha não importa. Colunas ausentes viram valores vazios.
func (s *SheetsService) ListSales(ctx context.Context) ([]domain.SaleRow, error) {
	values, err := s.Client.GetValues(ctx)
	if err != nil {
		return nil, err
	}

	if len(values) < 2 {
		return []domain.SaleRow{}, nil
	}

	columns := mapColumns(values[0])

	sales := make([]domain.SaleRow, 0, len(values)-1)
	for _, row := range values[1:] {
		sales = append(sales, domain.SaleRow{
			Data:     cellAt(row, columns[columnData]),
			Cartao:   cellAt(row, columns[columnCartao]),
			Dinheiro: cellAt(row, columns[columnDinheiro]),
			Pix:      cellAt(row, columns[columnPix]),
		})
	}

	return sales, nil
}

// AppendSale converte a data submetida para o formato da planilha e grava a
// venda como nova linha no final da aba.
func (s *SheetsService) AppendSale(ctx context.Context, submission domain.SaleSubmission) error {
	date, err := utils.ParseDate(submission.Data)
	if err != nil {
		return fmt.Errorf("erro ao interpretar a data da venda: %w", err)
	}

	row := []interface{}{
		utils.FormatDateBR(*date),
		submission.Cartao,
		submission.Dinheiro,
		submission.Pix,
	}

	return s.Client.AppendRow(ctx, row)
}

// CheckConnection verifica se a planilha está acessível com a credencial atual.
func (s *SheetsService) CheckConnection(ctx context.Context) (bool, error) {
	if _, err := s.Client.GetValues(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// mapColumns localiza as colunas conhecidas no cabeçalho. Colunas não
// encontradas ficam com índice -1.
func mapColumns(header []interface{}) map[string]int {
	columns := map[string]int{
		columnData:     -1,
		columnCartao:   -1,
		columnDinheiro: -1,
		columnPix:      -1,
	}

	for i, cell := range header {
		name := strings.TrimSpace(cellString(cell))
		if _, ok := columns[name]; ok {
			columns[name] = i
		}
	}

	return columns
}

func cellAt(row []interface{}, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}

	return cellString(row[index])
}

// cellString normaliza o valor de uma célula para texto. A API retorna
// strings no modo de renderização padrão, mas números podem chegar como
// float64 dependendo da formatação da célula.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
