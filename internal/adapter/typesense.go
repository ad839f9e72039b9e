package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/utils"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
)

// RecordIndex é o índice de busca de inspeções. A fonte de verdade continua
// sendo o armazenamento local; o índice é apenas um espelho.
type RecordIndex interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, record models.InspectionRecord) error
	Search(ctx context.Context, query string, page, perPage int) ([]string, int, error)
}

// RecordDocument é o documento indexado no Typesense
type RecordDocument struct {
	ID            string   `json:"id"`
	Placa         string   `json:"placa"`
	Marca         string   `json:"marca"`
	Modelo        string   `json:"modelo"`
	IMEI          []string `json:"imei"`
	ChecklistID   string   `json:"checklist_id"`
	ChecklistName string   `json:"checklist_name"`
	Status        string   `json:"status"`
	TotalPrice    float64  `json:"total_price"`
	DateUnix      int64    `json:"date_unix"`
}

// NewRecordDocument converte uma inspeção para o formato do índice
func NewRecordDocument(record models.InspectionRecord) RecordDocument {
	imei := record.Vehicle.IMEI
	if imei == nil {
		imei = []string{}
	}
	return RecordDocument{
		ID:            record.ID,
		Placa:         utils.NormalizePlaca(record.Vehicle.Placa),
		Marca:         record.Vehicle.Marca,
		Modelo:        record.Vehicle.Modelo,
		IMEI:          imei,
		ChecklistID:   record.ChecklistID,
		ChecklistName: record.ChecklistName,
		Status:        string(record.Status),
		TotalPrice:    record.TotalPrice,
		DateUnix:      record.Date.Unix(),
	}
}

// RecordsCollectionSchema define a collection de inspeções
func RecordsCollectionSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "placa", Type: "string"},
			{Name: "marca", Type: "string", Facet: pointer.True()},
			{Name: "modelo", Type: "string"},
			{Name: "imei", Type: "string[]", Optional: pointer.True()},
			{Name: "checklist_id", Type: "string", Facet: pointer.True()},
			{Name: "checklist_name", Type: "string", Facet: pointer.True()},
			{Name: "status", Type: "string", Facet: pointer.True()},
			{Name: "total_price", Type: "float"},
			{Name: "date_unix", Type: "int64", Sort: pointer.True()},
		},
		DefaultSortingField: pointer.String("date_unix"),
	}
}

// TypesenseRecordIndex implementa RecordIndex sobre o Typesense
type TypesenseRecordIndex struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseRecordIndex cria o índice de inspeções
func NewTypesenseRecordIndex(client *typesense.Client, collection string) *TypesenseRecordIndex {
	if collection == "" {
		collection = "inspection_records"
	}
	return &TypesenseRecordIndex{client: client, collection: collection}
}

// EnsureCollection cria a collection caso ainda não exista
func (t *TypesenseRecordIndex) EnsureCollection(ctx context.Context) error {
	_, err := t.client.Collection(t.collection).Retrieve(ctx)
	if err == nil {
		return nil
	}

	if !isNotFound(err) {
		return fmt.Errorf("erro ao consultar collection %s: %w", t.collection, err)
	}

	log.Printf("[Index] Collection %s não existe, criando...", t.collection)
	if _, err := t.client.Collections().Create(ctx, RecordsCollectionSchema(t.collection)); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", t.collection, err)
	}

	log.Printf("[Index] Collection %s criada com sucesso", t.collection)
	return nil
}

// Upsert indexa (ou reindexa) uma inspeção
func (t *TypesenseRecordIndex) Upsert(ctx context.Context, record models.InspectionRecord) error {
	doc, err := documentMap(NewRecordDocument(record))
	if err != nil {
		return err
	}

	if _, err := t.client.Collection(t.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("erro ao indexar inspeção %s: %w", record.ID, err)
	}
	return nil
}

// Search busca por placa, marca, modelo, IMEI ou nome do modelo e devolve os
// ids das inspeções encontradas, mais recentes primeiro
func (t *TypesenseRecordIndex) Search(ctx context.Context, query string, page, perPage int) ([]string, int, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		q = "*"
	}

	params := &api.SearchCollectionParams{
		Q:       pointer.String(q),
		QueryBy: pointer.String("placa,marca,modelo,imei,checklist_name"),
		SortBy:  pointer.String("_text_match:desc,date_unix:desc"),
		Page:    pointer.Int(page),
		PerPage: pointer.Int(perPage),
	}

	result, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("erro na busca de inspeções: %w", err)
	}

	found := 0
	if result.Found != nil {
		found = *result.Found
	}

	ids := make([]string, 0)
	if result.Hits == nil {
		return ids, found, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		if id, ok := (*hit.Document)["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, found, nil
}

func documentMap(doc RecordDocument) (map[string]interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar documento: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("erro ao converter documento: %w", err)
	}
	return out, nil
}

func isNotFound(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "404") || strings.Contains(msg, "Not found") || strings.Contains(msg, "Not Found")
}
