package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

const (
	ChecklistsKey = "cm_checklists"
	RecordsKey    = "cm_records"
)

// Gateway é o dono das coleções de modelos e inspeções
type Gateway interface {
	ListChecklists(ctx context.Context) ([]models.Checklist, error)
	UpsertChecklist(ctx context.Context, checklist models.Checklist) error
	ListRecords(ctx context.Context) ([]models.InspectionRecord, error)
	AppendRecord(ctx context.Context, record models.InspectionRecord) error
}

// KVGateway implementa Gateway sobre um KV, com cada coleção gravada como um
// array JSON em uma chave fixa.
//
// Leituras falham fechado: uma coleção corrompida ou ilegível vira a coleção
// padrão (modelos iniciais ou lista vazia) e o erro é apenas registrado. Antes
// de sobrescrever uma coleção corrompida, o conteúdo original é copiado para
// "<chave>.corrupted.<unix>".
//
// O mutex serializa o read-modify-write dentro do processo; múltiplos
// processos escrevendo no mesmo arquivo não são suportados.
type KVGateway struct {
	kv       KV
	mu       sync.Mutex
	defaults func() []models.Checklist
	now      func() time.Time
}

// NewKVGateway cria o gateway com os modelos iniciais padrão
func NewKVGateway(kv KV) *KVGateway {
	return &KVGateway{
		kv:       kv,
		defaults: models.DefaultChecklists,
		now:      time.Now,
	}
}

// ListChecklists retorna os modelos gravados. Na primeira chamada, sem dados,
// grava e retorna os modelos iniciais.
func (g *KVGateway) ListChecklists(ctx context.Context) ([]models.Checklist, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	lists, _ := g.loadChecklists(ctx)
	return lists, nil
}

// UpsertChecklist cria ou substitui o modelo pelo id, mantendo a posição
func (g *KVGateway) UpsertChecklist(ctx context.Context, checklist models.Checklist) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	lists, raw := g.loadChecklists(ctx)
	if raw != nil {
		g.backupCorrupted(ctx, ChecklistsKey, raw)
	}

	checklist = checklist.Clone()
	replaced := false
	for i := range lists {
		if lists[i].ID == checklist.ID {
			lists[i] = checklist
			replaced = true
			break
		}
	}
	if !replaced {
		lists = append(lists, checklist)
	}

	return g.write(ctx, ChecklistsKey, lists)
}

// ListRecords retorna as inspeções na ordem de inserção
func (g *KVGateway) ListRecords(ctx context.Context) ([]models.InspectionRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, _ := g.loadRecords(ctx)
	return records, nil
}

// AppendRecord adiciona uma inspeção ao final da coleção
func (g *KVGateway) AppendRecord(ctx context.Context, record models.InspectionRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, raw := g.loadRecords(ctx)
	if raw != nil {
		g.backupCorrupted(ctx, RecordsKey, raw)
	}

	records = append(records, record.Clone())
	return g.write(ctx, RecordsKey, records)
}

// loadChecklists devolve a coleção de modelos e, se o conteúdo gravado estiver
// corrompido, os bytes originais
func (g *KVGateway) loadChecklists(ctx context.Context) ([]models.Checklist, []byte) {
	data, err := g.kv.Get(ctx, ChecklistsKey)
	if errors.Is(err, ErrKeyNotFound) {
		seeded := g.defaults()
		if werr := g.write(ctx, ChecklistsKey, seeded); werr != nil {
			log.Printf("[Storage] Erro ao gravar modelos iniciais: %v", werr)
		} else {
			log.Printf("[Storage] Primeira execução: %d modelos iniciais gravados", len(seeded))
		}
		return seeded, nil
	}
	if err != nil {
		log.Printf("[Storage] Erro ao ler %s, usando modelos iniciais: %v", ChecklistsKey, err)
		return g.defaults(), nil
	}

	var lists []models.Checklist
	if err := json.Unmarshal(data, &lists); err != nil {
		log.Printf("[Storage] Coleção %s corrompida, usando modelos iniciais: %v", ChecklistsKey, err)
		return g.defaults(), data
	}
	if lists == nil {
		lists = []models.Checklist{}
	}
	return lists, nil
}

func (g *KVGateway) loadRecords(ctx context.Context) ([]models.InspectionRecord, []byte) {
	data, err := g.kv.Get(ctx, RecordsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.InspectionRecord{}, nil
	}
	if err != nil {
		log.Printf("[Storage] Erro ao ler %s, usando lista vazia: %v", RecordsKey, err)
		return []models.InspectionRecord{}, nil
	}

	var records []models.InspectionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[Storage] Coleção %s corrompida, usando lista vazia: %v", RecordsKey, err)
		return []models.InspectionRecord{}, data
	}
	if records == nil {
		records = []models.InspectionRecord{}
	}
	for i := range records {
		if dropped := dropInvalidAnswers(&records[i]); len(dropped) > 0 {
			log.Printf("[Storage] Inspeção %s com respostas sem tipo descartadas: %v", records[i].ID, dropped)
		}
	}
	return records, nil
}

// dropInvalidAnswers remove respostas sem tipo válido (ex.: null gravado por
// edição manual), que não poderiam ser serializadas de novo
func dropInvalidAnswers(record *models.InspectionRecord) []string {
	var dropped []string
	for id, value := range record.FieldValues {
		if !value.Type.IsValid() {
			dropped = append(dropped, id)
			delete(record.FieldValues, id)
		}
	}
	sort.Strings(dropped)
	return dropped
}

func (g *KVGateway) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao serializar %s: %w", key, err)
	}
	if err := g.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", key, err)
	}
	return nil
}

func (g *KVGateway) backupCorrupted(ctx context.Context, key string, raw []byte) {
	backupKey := fmt.Sprintf("%s.corrupted.%d", key, g.now().Unix())
	if err := g.kv.Set(ctx, backupKey, raw); err != nil {
		log.Printf("[Storage] Erro ao salvar cópia de %s: %v", key, err)
		return
	}
	log.Printf("[Storage] Conteúdo corrompido de %s copiado para %s", key, backupKey)
}
