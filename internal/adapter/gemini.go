package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

// recognitionPrompt é a instrução fixa enviada junto com a imagem
const recognitionPrompt = `Atue como um especialista profissional em veículos.
Extraia as seguintes informações da imagem enviada:
1. Placa (formato AAA0A00 ou AAA-0000)
2. Marca/Fabricante
3. Modelo do veículo
4. Qualquer IMEI ou número de série visível

Retorne APENAS um objeto JSON válido com as chaves:
- placa: string
- marca: string
- modelo: string
- imei: string[] (array de strings)

Use string vazia ou array vazio para o que não for identificado.
Não inclua nenhum outro texto nem blocos markdown.`

// VehicleRecognizer transforma uma imagem em um palpite de identificação do
// veículo. Nunca retorna erro: em qualquer falha devolve o VehicleInfo vazio.
type VehicleRecognizer interface {
	Recognize(ctx context.Context, image []byte, mimeType string) models.VehicleInfo
}

// DisabledRecognizer é usado quando não há chave do Gemini configurada
type DisabledRecognizer struct{}

// Recognize sempre devolve o fallback vazio
func (DisabledRecognizer) Recognize(context.Context, []byte, string) models.VehicleInfo {
	return models.EmptyVehicleInfo()
}

// contentGenerator é o subconjunto de genai.Models usado pelo reconhecimento
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configuração para o reconhecimento via Gemini
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig retorna configuração padrão
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		Model:   "gemini-2.5-flash",
		Timeout: 30 * time.Second,
	}
}

// GeminiRecognizer encapsula a chamada de OCR veicular no Gemini
type GeminiRecognizer struct {
	generator contentGenerator
	config    GeminiConfig
}

// NewVehicleRecognizer cria o reconhecedor a partir da configuração explícita.
// Sem chave de API, retorna um DisabledRecognizer.
func NewVehicleRecognizer(ctx context.Context, cfg GeminiConfig) VehicleRecognizer {
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Println("[Recognition] GEMINI_API_KEY não configurada, reconhecimento desabilitado")
		return DisabledRecognizer{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[Recognition] Erro ao inicializar cliente Gemini: %v", err)
		return DisabledRecognizer{}
	}

	return newGeminiRecognizer(client.Models, cfg)
}

func newGeminiRecognizer(generator contentGenerator, cfg GeminiConfig) *GeminiRecognizer {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiConfig().Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGeminiConfig().Timeout
	}
	return &GeminiRecognizer{generator: generator, config: cfg}
}

// vehicleSchema é o formato de saída exigido do modelo
func vehicleSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"placa":  {Type: genai.TypeString},
			"marca":  {Type: genai.TypeString},
			"modelo": {Type: genai.TypeString},
			"imei": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         []string{"placa", "marca", "modelo", "imei"},
		PropertyOrdering: []string{"placa", "marca", "modelo", "imei"},
	}
}

// Recognize envia a imagem ao Gemini e valida a resposta contra o formato de
// VehicleInfo. Qualquer falha resulta no VehicleInfo vazio.
func (g *GeminiRecognizer) Recognize(ctx context.Context, image []byte, mimeType string) models.VehicleInfo {
	ctx, span := otel.Tracer("recognition").Start(ctx, "recognition.gemini")
	defer span.End()
	span.SetAttributes(
		attribute.String("recognition.model", g.config.Model),
		attribute.Int("recognition.image_bytes", len(image)),
	)

	info, err := g.recognize(ctx, image, mimeType)
	if err != nil {
		log.Printf("[Recognition] Falha no OCR, retornando dados vazios: %v", err)
		span.SetAttributes(attribute.Bool("recognition.fallback", true))
		return models.EmptyVehicleInfo()
	}

	span.SetAttributes(attribute.Bool("recognition.fallback", false))
	return info
}

func (g *GeminiRecognizer) recognize(ctx context.Context, image []byte, mimeType string) (info models.VehicleInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic no cliente Gemini: %v", r)
		}
	}()

	if g.generator == nil {
		return models.VehicleInfo{}, fmt.Errorf("cliente Gemini não inicializado")
	}
	if len(image) == 0 {
		return models.VehicleInfo{}, fmt.Errorf("imagem vazia")
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return models.VehicleInfo{}, fmt.Errorf("conteúdo não é imagem: %s", mimeType)
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(recognitionPrompt),
	}, genai.RoleUser)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   vehicleSchema(),
	}

	resp, err := g.generator.GenerateContent(ctx, g.config.Model, []*genai.Content{content}, config)
	if err != nil {
		return models.VehicleInfo{}, fmt.Errorf("erro ao chamar Gemini: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return models.VehicleInfo{}, fmt.Errorf("resposta vazia do Gemini")
	}

	return ParseVehicleJSON(text)
}

// responseText concatena as partes de texto do primeiro candidato
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

type vehiclePayload struct {
	Placa  *string   `json:"placa"`
	Marca  *string   `json:"marca"`
	Modelo *string   `json:"modelo"`
	IMEI   *[]string `json:"imei"`
}

// ParseVehicleJSON valida a resposta do provedor: todas as quatro chaves são
// obrigatórias e devem ter o tipo esperado
func ParseVehicleJSON(text string) (models.VehicleInfo, error) {
	var payload vehiclePayload
	if err := json.Unmarshal([]byte(extractJSON(text)), &payload); err != nil {
		return models.VehicleInfo{}, fmt.Errorf("JSON inválido: %w", err)
	}

	var missing []string
	if payload.Placa == nil {
		missing = append(missing, "placa")
	}
	if payload.Marca == nil {
		missing = append(missing, "marca")
	}
	if payload.Modelo == nil {
		missing = append(missing, "modelo")
	}
	if payload.IMEI == nil {
		missing = append(missing, "imei")
	}
	if len(missing) > 0 {
		return models.VehicleInfo{}, fmt.Errorf("chaves ausentes na resposta: %s", strings.Join(missing, ", "))
	}

	return models.VehicleInfo{
		Placa:  utils.NormalizePlaca(*payload.Placa),
		Marca:  strings.TrimSpace(*payload.Marca),
		Modelo: strings.TrimSpace(*payload.Modelo),
		IMEI:   utils.NormalizeIdentifiers(*payload.IMEI),
	}, nil
}

// extractJSON extrai o objeto JSON de uma resposta que pode vir com markdown
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "{"); idx != -1 {
		s = s[idx:]
	}
	if idx := strings.LastIndex(s, "}"); idx != -1 {
		s = s[:idx+1]
	}

	return strings.TrimSpace(s)
}
