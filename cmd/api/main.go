package main

import (
	"context"
	"log"

	_ "github.com/prefeitura-rio/app-checkmaster/docs"
	"github.com/prefeitura-rio/app-checkmaster/internal/api/routes"
	"github.com/prefeitura-rio/app-checkmaster/internal/config"
	"github.com/prefeitura-rio/app-checkmaster/internal/observability"
)

// @title           CheckMaster API
// @version         1.0
// @description     API local do CheckMaster: modelos de inspeção, reconhecimento de veículos por foto, registro de inspeções e relatórios financeiros

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	deps, err := routes.BuildDependencies(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Erro ao inicializar dependências: %v", err)
	}
	defer deps.Close()

	r := routes.SetupRouter(cfg, deps)

	log.Printf("Servidor iniciado em %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Printf("Erro ao iniciar servidor: %v", err)
	}
}
