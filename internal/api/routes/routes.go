package routes

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-checkmaster/internal/adapter"
	"github.com/prefeitura-rio/app-checkmaster/internal/api/handlers"
	"github.com/prefeitura-rio/app-checkmaster/internal/config"
	middlewares "github.com/prefeitura-rio/app-checkmaster/internal/middleware"
	"github.com/prefeitura-rio/app-checkmaster/internal/services"
	"github.com/prefeitura-rio/app-checkmaster/internal/storage"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/typesense/typesense-go/v3/typesense"
)

// Dependencies reúne o que o roteador precisa. Index é nil quando o
// Typesense está desabilitado.
type Dependencies struct {
	Gateway    storage.Gateway
	Recognizer adapter.VehicleRecognizer
	Index      adapter.RecordIndex
	Location   *time.Location

	RequiredChecks map[string]handlers.HealthCheck
	OptionalChecks map[string]handlers.HealthCheck

	closers []func() error
}

// Close libera os recursos abertos por BuildDependencies
func (d *Dependencies) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			log.Printf("[Routes] Erro ao liberar recurso: %v", err)
		}
	}
}

// BuildDependencies abre o armazenamento e cria os clientes externos a partir
// da configuração
func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Location:       loc,
		RequiredChecks: make(map[string]handlers.HealthCheck),
		OptionalChecks: make(map[string]handlers.HealthCheck),
	}

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Println("[Routes] Armazenamento em memória: os dados serão perdidos ao encerrar")
		deps.Gateway = storage.NewKVGateway(storage.NewMemoryKV())
	default:
		kv, err := storage.NewSQLiteKV(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir armazenamento: %w", err)
		}
		deps.Gateway = storage.NewKVGateway(kv)
		deps.RequiredChecks["storage"] = kv.Ping
		deps.closers = append(deps.closers, kv.Close)
	}

	recognizer := adapter.NewVehicleRecognizer(ctx, adapter.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiVisionModel,
		Timeout: cfg.RecognitionTimeout,
	})
	deps.Recognizer = adapter.NewCachedRecognizer(recognizer, cfg.RecognitionCacheSize, cfg.RecognitionCacheTTL)

	if cfg.TypesenseEnabled {
		client := typesense.NewClient(
			typesense.WithServer(cfg.TypesenseURL()),
			typesense.WithAPIKey(cfg.TypesenseAPIKey),
			typesense.WithConnectionTimeout(10*time.Second),
		)
		index := adapter.NewTypesenseRecordIndex(client, cfg.TypesenseRecordsCollection)
		if err := index.EnsureCollection(ctx); err != nil {
			log.Printf("[Routes] Índice de busca indisponível, usando varredura local até reconectar: %v", err)
		}
		deps.Index = index
		deps.OptionalChecks["typesense"] = func(ctx context.Context) error {
			_, err := client.Health(ctx, 2*time.Second)
			return err
		}
	}

	return deps, nil
}

func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	checklistService := services.NewChecklistService(deps.Gateway)
	reportService := services.NewReportService(deps.Location, cfg.DailySeriesGroups)
	recordService := services.NewRecordService(deps.Gateway, checklistService, services.NewRecordBuilder(), deps.Index)

	checklistHandler := handlers.NewChecklistHandler(checklistService)
	recordHandler := handlers.NewRecordHandler(recordService, checklistService, reportService, cfg.RecentLimit)
	recognitionHandler := handlers.NewRecognitionHandler(deps.Recognizer)
	reportHandler := handlers.NewReportHandler(recordService, reportService)
	healthHandler := handlers.NewHealthHandler(deps.RequiredChecks, deps.OptionalChecks)

	r.GET("/health", healthHandler.Health)
	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	api := r.Group("/api/v1")
	{
		checklists := api.Group("/checklists")
		{
			checklists.GET("", checklistHandler.ListChecklists)
			checklists.POST("", checklistHandler.CreateChecklist)
			checklists.GET("/:id", checklistHandler.GetChecklist)
			checklists.PUT("/:id", checklistHandler.UpdateChecklist)
		}

		records := api.Group("/records")
		{
			records.GET("", recordHandler.ListRecords)
			records.POST("", recordHandler.CreateRecord)
			records.POST("/preview", recordHandler.PreviewRecord)
			records.GET("/recent", recordHandler.RecentRecords)
			records.GET("/search", recordHandler.SearchRecords)
			records.GET("/:id", recordHandler.GetRecord)
			records.GET("/:id/receipt", recordHandler.GetReceipt)
		}

		api.POST("/recognition", recognitionHandler.RecognizeVehicle)

		reports := api.Group("/reports")
		{
			reports.GET("/summary", reportHandler.GetSummary)
			reports.GET("/daily", reportHandler.GetDailySeries)
			reports.GET("/calendar", reportHandler.GetCalendarSeries)
			reports.GET("/finance", reportHandler.GetFinanceSummary)
			reports.GET("/export.csv", reportHandler.ExportCSV)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, If-None-Match, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID, Content-Disposition")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
