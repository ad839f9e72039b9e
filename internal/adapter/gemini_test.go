package adapter

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"google.golang.org/genai"
)

// fakeGenerator devolve uma resposta fixa e guarda a última chamada
type fakeGenerator struct {
	text   string
	err    error
	panics bool

	gotModel  string
	gotConfig *genai.GenerateContentConfig
	gotParts  int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if f.panics {
		panic("falha inesperada")
	}
	f.gotModel = model
	f.gotConfig = config
	if len(contents) > 0 {
		f.gotParts = len(contents[0].Parts)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestGeminiRecognizerRecognize(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want models.VehicleInfo
	}{
		{
			name: "Resposta completa",
			gen:  &fakeGenerator{text: `{"placa":"abc-1d23","marca":"Fiat","modelo":"Uno","imei":["356938035643809"]}`},
			want: models.VehicleInfo{Placa: "ABC1D23", Marca: "Fiat", Modelo: "Uno", IMEI: []string{"356938035643809"}},
		},
		{
			name: "Resposta com bloco markdown",
			gen:  &fakeGenerator{text: "```json\n{\"placa\":\"\",\"marca\":\"VW\",\"modelo\":\"Gol\",\"imei\":[]}\n```"},
			want: models.VehicleInfo{Marca: "VW", Modelo: "Gol", IMEI: []string{}},
		},
		{
			name: "Chave ausente",
			gen:  &fakeGenerator{text: `{"placa":"ABC1D23","marca":"Fiat","modelo":"Uno"}`},
			want: models.EmptyVehicleInfo(),
		},
		{
			name: "Tipo errado",
			gen:  &fakeGenerator{text: `{"placa":"ABC1D23","marca":"Fiat","modelo":"Uno","imei":"123"}`},
			want: models.EmptyVehicleInfo(),
		},
		{
			name: "Texto que não é JSON",
			gen:  &fakeGenerator{text: "Não consegui identificar o veículo."},
			want: models.EmptyVehicleInfo(),
		},
		{
			name: "Erro de rede",
			gen:  &fakeGenerator{err: errors.New("connection reset")},
			want: models.EmptyVehicleInfo(),
		},
		{
			name: "Panic do cliente",
			gen:  &fakeGenerator{panics: true},
			want: models.EmptyVehicleInfo(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newGeminiRecognizer(tt.gen, GeminiConfig{})
			got := r.Recognize(context.Background(), pngHeader, "image/png")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recognize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeminiRecognizerRequest(t *testing.T) {
	gen := &fakeGenerator{text: `{"placa":"","marca":"","modelo":"","imei":[]}`}
	r := newGeminiRecognizer(gen, GeminiConfig{Model: "gemini-teste", Timeout: time.Second})

	r.Recognize(context.Background(), pngHeader, "")

	if gen.gotModel != "gemini-teste" {
		t.Errorf("model = %q", gen.gotModel)
	}
	if gen.gotParts != 2 {
		t.Errorf("esperado imagem + instrução, got %d partes", gen.gotParts)
	}
	if gen.gotConfig == nil || gen.gotConfig.ResponseMIMEType != "application/json" {
		t.Fatalf("resposta deveria ser pedida em JSON: %+v", gen.gotConfig)
	}
	required := gen.gotConfig.ResponseSchema.Required
	if !reflect.DeepEqual(required, []string{"placa", "marca", "modelo", "imei"}) {
		t.Errorf("schema.Required = %v", required)
	}
}

func TestGeminiRecognizerRejectsNonImage(t *testing.T) {
	gen := &fakeGenerator{text: `{"placa":"ABC1D23","marca":"","modelo":"","imei":[]}`}
	r := newGeminiRecognizer(gen, GeminiConfig{})

	got := r.Recognize(context.Background(), []byte("texto qualquer"), "text/plain")
	if !got.IsEmpty() {
		t.Errorf("conteúdo não imagem deveria resultar em vazio, got %+v", got)
	}
	if gen.gotModel != "" {
		t.Errorf("provedor não deveria ser chamado")
	}

	if got := r.Recognize(context.Background(), nil, "image/png"); !got.IsEmpty() {
		t.Errorf("imagem vazia deveria resultar em vazio, got %+v", got)
	}
}

func TestNewVehicleRecognizerWithoutKey(t *testing.T) {
	r := NewVehicleRecognizer(context.Background(), GeminiConfig{APIKey: "  "})
	if _, ok := r.(DisabledRecognizer); !ok {
		t.Fatalf("sem chave deveria retornar DisabledRecognizer, got %T", r)
	}
	if got := r.Recognize(context.Background(), pngHeader, "image/png"); got.IMEI == nil || !got.IsEmpty() {
		t.Errorf("DisabledRecognizer deveria retornar vazio com imei [], got %#v", got)
	}
}
