package sheetsclient

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"
)

const requestTimeout = 45 * time.Second

// GetValues lê todas as linhas da aba de vendas, incluindo o cabeçalho.
func (c *GoogleSheetsClient) GetValues(ctx context.Context) ([][]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.service.Spreadsheets.Values.
		Get(c.config.Sheets.SpreadsheetID, c.config.Sheets.WorksheetName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a planilha: %w", err)
	}

	return resp.Values, nil
}

// AppendRow acrescenta uma linha ao final da aba de vendas.
func (c *GoogleSheetsClient) AppendRow(ctx context.Context, row []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.service.Spreadsheets.Values.
		Append(c.config.Sheets.SpreadsheetID, c.config.Sheets.WorksheetName, valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao gravar na planilha: %w", err)
	}

	return nil
}
