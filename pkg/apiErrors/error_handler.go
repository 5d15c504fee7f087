package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidSubmission   = "VAL_004" // Registro de venda rejeitado pela validação
	ErrRouteNotFound       = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método HTTP não aceito pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrSpreadsheetRead    = "SRV_002" // Erro de leitura da planilha
	ErrSpreadsheetWrite   = "SRV_003" // Erro de gravação na planilha
	ErrSpreadsheetConnect = "SRV_004" // Falha de conexão ou autenticação com a planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidSubmission:   http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrSpreadsheetRead:     http.StatusBadGateway,
	ErrSpreadsheetWrite:    http.StatusBadGateway,
	ErrSpreadsheetConnect:  http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado na resposta HTTP. Códigos fora do
// mapa de status respondem 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// FromError envolve um erro Go em um erro de API com o código informado
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
