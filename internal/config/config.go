package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Sheets      Sheets      `mapstructure:",squash"`
	SalesReload SalesReload `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Sheets reúne a configuração de acesso à planilha de vendas.
// CredentialsJSON recebe o conteúdo da conta de serviço pela variável de
// ambiente GOOGLE_CREDENTIALS; quando vazio, o arquivo CredentialsFile é
// lido do disco. A lógica de negócio não depende de qual caminho foi usado.
type Sheets struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	WorksheetName   string `mapstructure:"worksheet_name"`
	CredentialsJSON string `mapstructure:"google_credentials"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

// SalesReload controla a recarga periódica da planilha em memória
type SalesReload struct {
	Interval time.Duration `mapstructure:"sales_reload_interval"`
	Enabled  bool          `mapstructure:"sales_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_NAME", "sales-dashboard-api")
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SPREADSHEET_ID", "1NTScbiIna-iE7roQ9XBdjUOssRihTFFby4INAAQNXTg")
	viper.SetDefault("WORKSHEET_NAME", "Vendas")
	viper.SetDefault("GOOGLE_CREDENTIALS", "") // Conteúdo JSON da conta de serviço
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")

	// Mesma cadência de atualização do painel
	viper.SetDefault("SALES_RELOAD_INTERVAL", "60s")
	viper.SetDefault("SALES_RELOAD_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// O godotenv cobre a execução local; em produção as variáveis já vêm do
	// ambiente e o carregamento do .env simplesmente não encontra arquivo.
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Leitura do .env pelo Viper é opcional, o godotenv já populou o ambiente
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile procura o .env no diretório atual e nos diretórios acima,
// útil quando o binário roda de dentro de cmd/api.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, seguindo apenas com o ambiente")
}
