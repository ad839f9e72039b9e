package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prefeitura-rio/app-checkmaster/internal/api/routes"
	"github.com/prefeitura-rio/app-checkmaster/internal/config"
	"github.com/prefeitura-rio/app-checkmaster/internal/services"
)

// Reenvia todas as inspeções gravadas para o índice Typesense. Usado depois de
// recriar a collection ou quando o índice ficou para trás (ex.: Typesense fora
// do ar durante finalizações).
func main() {
	workers := flag.Int("workers", 3, "Workers paralelos")
	collection := flag.String("collection", "", "Collection alvo (padrão: TYPESENSE_RECORDS_COLLECTION)")
	timeout := flag.Duration("timeout", 10*time.Minute, "Tempo máximo da reindexação")

	flag.Parse()

	// Carrega .env
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if *collection != "" {
		cfg.TypesenseRecordsCollection = *collection
	}
	if !cfg.TypesenseEnabled {
		log.Fatalf("Typesense desabilitado: defina TYPESENSE_ENABLED=true para reindexar")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	deps, err := routes.BuildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Erro ao inicializar dependências: %v", err)
	}
	defer deps.Close()

	checklistService := services.NewChecklistService(deps.Gateway)
	recordService := services.NewRecordService(deps.Gateway, checklistService, services.NewRecordBuilder(), deps.Index)

	log.Printf("Iniciando reindexação...")
	log.Printf("Collection: %s", cfg.TypesenseRecordsCollection)
	log.Printf("Workers: %d", *workers)

	start := time.Now()
	indexed, err := recordService.Reindex(ctx, *workers)
	if err != nil {
		log.Printf("Erro na reindexação após %d inspeções: %v", indexed, err)
		deps.Close()
		os.Exit(1)
	}

	log.Printf("Reindexação concluída: %d inspeções em %s", indexed, time.Since(start).Round(time.Millisecond))
}
