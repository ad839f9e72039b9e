package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/storage"
	"github.com/prefeitura-rio/app-checkmaster/internal/utils"
)

// ChecklistService valida e grava modelos de inspeção
type ChecklistService struct {
	gateway storage.Gateway
}

// NewChecklistService cria um novo serviço de modelos
func NewChecklistService(gateway storage.Gateway) *ChecklistService {
	return &ChecklistService{gateway: gateway}
}

// List retorna os modelos e o fingerprint da coleção (usado como ETag)
func (cs *ChecklistService) List(ctx context.Context) ([]models.Checklist, string, error) {
	lists, err := cs.gateway.ListChecklists(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao listar checklists: %w", err)
	}

	etag, err := storage.Fingerprint(lists)
	if err != nil {
		log.Printf("[Checklists] Erro ao calcular fingerprint: %v", err)
		etag = ""
	}
	return lists, etag, nil
}

// Get busca um modelo pelo id
func (cs *ChecklistService) Get(ctx context.Context, id string) (models.Checklist, error) {
	lists, err := cs.gateway.ListChecklists(ctx)
	if err != nil {
		return models.Checklist{}, fmt.Errorf("erro ao listar checklists: %w", err)
	}
	for _, c := range lists {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Checklist{}, models.ErrChecklistNotFound
}

// Save valida o modelo e grava (cria ou substitui pelo id). Um modelo mal
// formado nunca chega ao armazenamento.
func (cs *ChecklistService) Save(ctx context.Context, checklist models.Checklist) error {
	if err := models.ValidateChecklist(checklist); err != nil {
		return err
	}
	if err := cs.gateway.UpsertChecklist(ctx, checklist); err != nil {
		return fmt.Errorf("erro ao gravar checklist %s: %w", checklist.ID, err)
	}
	log.Printf("[Checklists] Checklist %s (%s) gravado com %d campos", checklist.ID, checklist.Name, len(checklist.Fields))
	return nil
}

// Create grava um modelo novo. Sem id, gera um a partir do nome.
func (cs *ChecklistService) Create(ctx context.Context, checklist models.Checklist) (models.Checklist, error) {
	if strings.TrimSpace(checklist.ID) == "" {
		checklist.ID = utils.GenerateChecklistID(checklist.Name, uuid.NewString())
	} else if _, err := cs.Get(ctx, checklist.ID); err == nil {
		return models.Checklist{}, models.ErrChecklistExists
	}

	if err := cs.Save(ctx, checklist); err != nil {
		return models.Checklist{}, err
	}
	return checklist, nil
}
