package observability

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	ServiceName    = "app-checkmaster"
	ServiceVersion = "v1.0.0"
)

var (
	tracerProvider *sdktrace.TracerProvider
)

// InitTracer liga a exportação OTLP gRPC quando TRACING_ENABLED=true. Sem
// isso o provider global no-op continua em uso e os spans dos serviços e do
// middleware são descartados.
func InitTracer(cfg *config.Config) {
	if !cfg.TracingEnabled {
		log.Println("[Tracing] Tracing desabilitado")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	))
	if err != nil {
		log.Printf("[Tracing] Erro ao criar exportador OTLP, seguindo sem tracing: %v", err)
		return
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		log.Printf("[Tracing] Erro ao criar resource, seguindo sem tracing: %v", err)
		_ = exporter.Shutdown(ctx)
		return
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(128),
			sdktrace.WithBatchTimeout(5*time.Second),
			sdktrace.WithMaxQueueSize(512),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(cfg.TracingSampleRatio)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Printf("[Tracing] Exportando para %s (amostragem %.2f)", cfg.TracingEndpoint, cfg.TracingSampleRatio)
}

// newSampler respeita a decisão do chamador quando a requisição já chega com
// um trace; só as raízes seguem a fração configurada
func newSampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// newResource identifica a instalação: cada operador roda a própria cópia,
// então o hostname separa os traces de máquinas diferentes
func newResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(ServiceName),
		semconv.ServiceVersionKey.String(ServiceVersion),
		attribute.String("checkmaster.storage_driver", cfg.StorageDriver),
		attribute.Bool("checkmaster.search_index", cfg.TypesenseEnabled),
	}
	if host, err := os.Hostname(); err == nil {
		attrs = append(attrs, semconv.ServiceInstanceIDKey.String(host))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// ShutdownTracer descarrega os spans pendentes e encerra o provider
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Printf("[Tracing] Erro ao encerrar tracer provider: %v", err)
	}
	tracerProvider = nil
}
