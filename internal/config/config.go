// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_HOST: Interface de escuta (default: 127.0.0.1, apenas local)
//   - SERVER_PORT: Porta do servidor (default: 8080)
//
// ## Armazenamento
//   - STORAGE_DRIVER: sqlite ou memory (default: sqlite)
//   - SQLITE_DSN: Caminho do arquivo SQLite (default: checkmaster.db)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini (vazia desabilita o reconhecimento)
//   - GEMINI_VISION_MODEL: Modelo usado no OCR veicular (default: gemini-2.5-flash)
//   - RECOGNITION_TIMEOUT_SECONDS: Tempo máximo do reconhecimento (default: 30)
//   - RECOGNITION_CACHE_SIZE: Fotos reconhecidas mantidas em cache (default: 64, 0 desabilita)
//   - RECOGNITION_CACHE_TTL_MINUTES: Validade de cada resultado em cache (default: 30)
//
// ## Relatórios
//   - TIMEZONE: Fuso usado para agrupar os dias (default: America/Sao_Paulo)
//   - DAILY_SERIES_GROUPS: Quantidade de dias da série diária (default: 7)
//   - RECENT_RECORDS_LIMIT: Inspeções exibidas no histórico do dashboard (default: 5)
//
// ## Typesense (opcional)
//   - TYPESENSE_ENABLED: Habilita o índice de busca de inspeções (default: false)
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_RECORDS_COLLECTION: Collection das inspeções (default: inspection_records)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração das requisições amostradas, 0 a 1 (default: 1)
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

type Config struct {
	ServerHost string
	ServerPort string

	StorageDriver string
	SQLiteDSN     string

	// Gemini configuration
	GeminiAPIKey         string
	GeminiVisionModel    string
	RecognitionTimeout   time.Duration
	RecognitionCacheSize int
	RecognitionCacheTTL  time.Duration

	// Relatórios
	Timezone          string
	DailySeriesGroups int
	RecentLimit       int

	// Typesense configuration
	TypesenseEnabled           bool
	TypesenseHost              string
	TypesensePort              string
	TypesenseAPIKey            string
	TypesenseProtocol          string
	TypesenseRecordsCollection string

	// Tracing configuration
	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerHost: getEnv("SERVER_HOST", "127.0.0.1"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverSQLite)),
		SQLiteDSN:     getEnv("SQLITE_DSN", "checkmaster.db"),

		// Gemini configuration
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiVisionModel:    getEnv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
		RecognitionTimeout:   time.Duration(getEnvInt("RECOGNITION_TIMEOUT_SECONDS", 30)) * time.Second,
		RecognitionCacheSize: getEnvInt("RECOGNITION_CACHE_SIZE", 64),
		RecognitionCacheTTL:  time.Duration(getEnvInt("RECOGNITION_CACHE_TTL_MINUTES", 30)) * time.Minute,

		Timezone:          getEnv("TIMEZONE", "America/Sao_Paulo"),
		DailySeriesGroups: getEnvInt("DAILY_SERIES_GROUPS", 7),
		RecentLimit:       getEnvInt("RECENT_RECORDS_LIMIT", 5),

		// Typesense configuration
		TypesenseEnabled:           getEnvBool("TYPESENSE_ENABLED", false),
		TypesenseHost:              getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:              getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:            getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:          getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseRecordsCollection: getEnv("TYPESENSE_RECORDS_COLLECTION", "inspection_records"),

		// Tracing configuration
		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1),
	}
}

// Validate confere combinações inválidas antes de subir o servidor
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverSQLite:
		if strings.TrimSpace(c.SQLiteDSN) == "" {
			return fmt.Errorf("SQLITE_DSN é obrigatório quando STORAGE_DRIVER=sqlite")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q (valores válidos: sqlite, memory)", c.StorageDriver)
	}

	if c.RecognitionTimeout <= 0 {
		return fmt.Errorf("RECOGNITION_TIMEOUT_SECONDS deve ser maior que zero")
	}
	if c.RecognitionCacheSize < 0 {
		return fmt.Errorf("RECOGNITION_CACHE_SIZE não pode ser negativo")
	}
	if c.TracingSampleRatio < 0 || c.TracingSampleRatio > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATIO deve estar entre 0 e 1")
	}
	if c.DailySeriesGroups < 1 {
		return fmt.Errorf("DAILY_SERIES_GROUPS deve ser maior que zero")
	}
	if c.TypesenseEnabled && c.TypesenseAPIKey == "" {
		return fmt.Errorf("TYPESENSE_API_KEY é obrigatório quando TYPESENSE_ENABLED=true")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location carrega o fuso configurado
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE inválido %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Addr retorna o endereço de escuta do servidor
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// TypesenseURL monta a URL do servidor Typesense
func (c *Config) TypesenseURL() string {
	return fmt.Sprintf("%s://%s:%s", c.TypesenseProtocol, c.TypesenseHost, c.TypesensePort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
