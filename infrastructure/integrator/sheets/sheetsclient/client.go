package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/clipsburger/sales-dashboard-api/internal/config"
)

type Client interface {
	GetValues(ctx context.Context) ([][]interface{}, error)
	AppendRow(ctx context.Context, row []interface{}) error
}

type GoogleSheetsClient struct {
	service *sheets.Service
	config  *config.Config
}

// NewClient autentica com a conta de serviço e devolve o cliente da API do
// Google Sheets pronto para uso. A credencial vem da variável de ambiente
// GOOGLE_CREDENTIALS ou, na ausência dela, do arquivo local configurado.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	jsonKey, err := resolveCredentials(&cfg.Sheets)
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey,
		sheets.SpreadsheetsScope,
		sheets.SpreadsheetsReadonlyScope,
		sheets.DriveReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar a credencial da conta de serviço: %w", err)
	}

	httpClient := oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))

	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o serviço do Google Sheets: %w", err)
	}

	return &GoogleSheetsClient{
		service: service,
		config:  cfg,
	}, nil
}

// resolveCredentials tenta a variável de ambiente primeiro e usa o arquivo
// local como alternativa.
func resolveCredentials(cfg *config.Sheets) ([]byte, error) {
	if cfg.CredentialsJSON != "" {
		return []byte(cfg.CredentialsJSON), nil
	}

	jsonKey, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de credenciais %s: %w", cfg.CredentialsFile, err)
	}

	return jsonKey, nil
}
