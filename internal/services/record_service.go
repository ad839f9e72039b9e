package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/prefeitura-rio/app-checkmaster/internal/adapter"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/storage"
	"github.com/prefeitura-rio/app-checkmaster/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// IntakeRequest é o que o assistente de entrada envia para finalizar uma
// inspeção: modelo escolhido, veículo confirmado e respostas cruas
type IntakeRequest struct {
	ChecklistID string                     `json:"checklistId" validate:"required"`
	Vehicle     models.VehicleInfo         `json:"vehicle"`
	Answers     map[string]json.RawMessage `json:"answers"`
}

// RecordService coordena builder, armazenamento e índice de busca
type RecordService struct {
	gateway    storage.Gateway
	checklists *ChecklistService
	builder    *RecordBuilder
	index      adapter.RecordIndex
}

// NewRecordService cria o serviço de inspeções. index pode ser nil, e nesse
// caso a busca é feita varrendo o armazenamento.
func NewRecordService(gateway storage.Gateway, checklists *ChecklistService, builder *RecordBuilder, index adapter.RecordIndex) *RecordService {
	return &RecordService{
		gateway:    gateway,
		checklists: checklists,
		builder:    builder,
		index:      index,
	}
}

// Preview monta o registro sem gravar, para revisão do operador
func (rs *RecordService) Preview(ctx context.Context, req IntakeRequest) (models.InspectionRecord, error) {
	ctx, span := otel.Tracer("services").Start(ctx, "records.preview")
	defer span.End()

	return rs.build(ctx, req)
}

// Finalize monta o registro e grava. Falhas de validação não gravam nada;
// falhas do índice de busca são apenas registradas em log.
func (rs *RecordService) Finalize(ctx context.Context, req IntakeRequest) (models.InspectionRecord, error) {
	ctx, span := otel.Tracer("services").Start(ctx, "records.finalize")
	defer span.End()
	span.SetAttributes(attribute.String("checklist.id", req.ChecklistID))

	record, err := rs.build(ctx, req)
	if err != nil {
		return models.InspectionRecord{}, err
	}

	if err := rs.gateway.AppendRecord(ctx, record); err != nil {
		return models.InspectionRecord{}, fmt.Errorf("erro ao gravar inspeção: %w", err)
	}
	span.SetAttributes(attribute.String("record.id", record.ID))
	log.Printf("[Records] Inspeção %s gravada (checklist %s, placa %q, R$ %.2f)", record.ID, record.ChecklistID, record.Vehicle.Placa, record.TotalPrice)

	if rs.index != nil {
		if err := rs.index.Upsert(ctx, record); err != nil {
			log.Printf("[Records] Erro ao indexar inspeção %s: %v", record.ID, err)
		}
	}

	return record, nil
}

func (rs *RecordService) build(ctx context.Context, req IntakeRequest) (models.InspectionRecord, error) {
	template, err := rs.checklists.Get(ctx, req.ChecklistID)
	if err != nil {
		return models.InspectionRecord{}, err
	}

	answers, err := ParseAnswers(template, req.Answers)
	if err != nil {
		return models.InspectionRecord{}, err
	}

	vehicle := req.Vehicle
	vehicle.Placa = utils.NormalizePlaca(vehicle.Placa)
	vehicle.IMEI = utils.NormalizeIdentifiers(vehicle.IMEI)

	return rs.builder.Finalize(template, vehicle, answers)
}

// List retorna todas as inspeções na ordem de inserção
func (rs *RecordService) List(ctx context.Context) ([]models.InspectionRecord, error) {
	records, err := rs.gateway.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar inspeções: %w", err)
	}
	return records, nil
}

// Get busca uma inspeção pelo id
func (rs *RecordService) Get(ctx context.Context, id string) (models.InspectionRecord, error) {
	records, err := rs.List(ctx)
	if err != nil {
		return models.InspectionRecord{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.InspectionRecord{}, models.ErrRecordNotFound
}

// Search busca inspeções por placa, marca, modelo, IMEI ou nome do modelo.
// Usa o índice quando disponível e cai para a varredura local em caso de erro.
func (rs *RecordService) Search(ctx context.Context, query string, page, perPage int) (*models.RecordSearchResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	records, err := rs.List(ctx)
	if err != nil {
		return nil, err
	}

	if rs.index != nil {
		resp, err := rs.searchIndex(ctx, records, query, page, perPage)
		if err == nil {
			return resp, nil
		}
		log.Printf("[Records] Busca no índice falhou, usando varredura local: %v", err)
	}

	return searchLocal(records, query, page, perPage), nil
}

func (rs *RecordService) searchIndex(ctx context.Context, records []models.InspectionRecord, query string, page, perPage int) (*models.RecordSearchResponse, error) {
	ids, found, err := rs.index.Search(ctx, query, page, perPage)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.InspectionRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	out := make([]models.InspectionRecord, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}

	return &models.RecordSearchResponse{
		Found:   found,
		Page:    page,
		PerPage: perPage,
		Source:  "index",
		Records: out,
	}, nil
}

func searchLocal(records []models.InspectionRecord, query string, page, perPage int) *models.RecordSearchResponse {
	terms := strings.Fields(utils.NormalizeText(query))
	placaQuery := utils.NormalizePlaca(query)

	matches := make([]models.InspectionRecord, 0)
	for _, r := range records {
		if matchesRecord(r, terms, placaQuery) {
			matches = append(matches, r)
		}
	}
	matches = newestFirst(matches)

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	return &models.RecordSearchResponse{
		Found:   len(matches),
		Page:    page,
		PerPage: perPage,
		Source:  "store",
		Records: matches[start:end],
	}
}

func matchesRecord(r models.InspectionRecord, terms []string, placaQuery string) bool {
	if len(terms) == 0 {
		return true
	}
	if placaQuery != "" && strings.Contains(utils.NormalizePlaca(r.Vehicle.Placa), placaQuery) {
		return true
	}

	haystack := utils.NormalizeText(strings.Join([]string{
		r.Vehicle.Marca,
		r.Vehicle.Modelo,
		r.Vehicle.Placa,
		strings.Join(r.Vehicle.IMEI, " "),
		r.ChecklistName,
	}, " "))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// Reindex envia todas as inspeções gravadas para o índice de busca usando
// workers em paralelo. Retorna quantas foram indexadas.
func (rs *RecordService) Reindex(ctx context.Context, workers int) (int, error) {
	if rs.index == nil {
		return 0, models.ErrIndexDisabled
	}
	if workers < 1 {
		workers = 1
	}

	if err := rs.index.EnsureCollection(ctx); err != nil {
		return 0, fmt.Errorf("erro ao preparar índice: %w", err)
	}

	records, err := rs.List(ctx)
	if err != nil {
		return 0, err
	}

	jobs := make(chan models.InspectionRecord)
	var indexed int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for _, r := range records {
			select {
			case jobs <- r:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for r := range jobs {
				if err := rs.index.Upsert(gctx, r); err != nil {
					return fmt.Errorf("inspeção %s: %w", r.ID, err)
				}
				atomic.AddInt64(&indexed, 1)
			}
			return nil
		})
	}

	err = g.Wait()
	return int(atomic.LoadInt64(&indexed)), err
}
