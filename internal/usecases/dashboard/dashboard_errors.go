package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto do painel de vendas
var (
	// Erros de validação do registro de venda
	ErrDateRequired   = errors.New("sale date is required")
	ErrInvalidDate    = errors.New("sale date is invalid")
	ErrNoAmount       = errors.New("sale has no positive amount")
	ErrNegativeAmount = errors.New("sale has negative amounts")

	// Erros de integração com a planilha
	ErrSpreadsheetRead  = errors.New("error reading sales from spreadsheet")
	ErrSpreadsheetWrite = errors.New("error appending sale to spreadsheet")

	// Erros internos
	ErrGenerateID = errors.New("error generating receipt ID")
)

// DashboardError é um erro com contexto adicional do painel
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
