package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/application/inventory"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/ledger"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD y listado de items. Los movimientos de
// stock van por inventory.AdjustStockUseCase; aquí Update es el camino de
// corrección administrativa (sobrescribe campos, sin historial).
type ItemUseCase struct {
	repo     repository.ItemRepository
	txRunner inventory.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, txRunner inventory.TxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo Item. El historial inicia vacío aunque stockIn
// venga con valor: la creación explícita no es un movimiento.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	description := strings.TrimSpace(in.Description)
	unit := strings.TrimSpace(in.Unit)
	if description == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockIn.IsNegative() || in.StockOut.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Description: description,
		Unit:        unit,
		Category:    in.Category,
		StockIn:     in.StockIn,
		StockOut:    in.StockOut,
		MinStock:    in.MinStock,
		CreatedAt:   now,
	}
	ledger.Recompute(item, now)
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un Item con su historial.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update aplica sobrescrituras parciales y ejecuta el recompute del ledger.
// Un totalStock enviado por el caller no existe en el DTO: se descarta por
// construcción. No anexa historial (corrección, no movimiento).
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if in.Description != nil {
			description := strings.TrimSpace(*in.Description)
			if description == "" {
				return domain.ErrInvalidInput
			}
			item.Description = description
		}
		if in.Unit != nil {
			unit := strings.TrimSpace(*in.Unit)
			if unit == "" {
				return domain.ErrInvalidInput
			}
			item.Unit = unit
		}
		if in.Category != nil {
			if !entity.ValidCategory(*in.Category) {
				return domain.ErrInvalidInput
			}
			item.Category = *in.Category
		}
		if in.StockIn != nil {
			if in.StockIn.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.StockIn = *in.StockIn
		}
		if in.StockOut != nil {
			if in.StockOut.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.StockOut = *in.StockOut
		}
		if in.MinStock != nil {
			if in.MinStock.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.MinStock = *in.MinStock
		}

		ledger.Recompute(item, time.Now())
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el Item y su historial (hard delete).
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve la página filtrada con total y totalPages.
func (uc *ItemUseCase) List(f repository.ItemFilter) (*dto.ItemListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.StockStatus != "" && !ledger.ValidStatus(f.StockStatus) {
		return nil, domain.ErrInvalidInput
	}
	if f.Category != "" && !entity.ValidCategory(f.Category) {
		return nil, domain.ErrInvalidInput
	}

	items, total, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	totalPages := (total + f.Limit - 1) / f.Limit
	return &dto.ItemListResponse{
		Items:       out,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: f.Page,
	}, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	history := make([]dto.HistoryEntryResponse, 0, len(it.History))
	for _, h := range it.History {
		history = append(history, dto.HistoryEntryResponse{
			Quantity: h.Quantity,
			Type:     h.Type,
			Notes:    h.Notes,
			Date:     h.Date,
		})
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Description: it.Description,
		Unit:        it.Unit,
		Category:    it.Category,
		StockIn:     it.StockIn,
		StockOut:    it.StockOut,
		TotalStock:  it.TotalStock,
		MinStock:    it.MinStock,
		History:     history,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
