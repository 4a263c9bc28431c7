package inventory

import (
	"context"
	"time"

	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/ledger"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// AdjustStockUseCase registra un movimiento in/out sobre un Item de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// Adjust valida la solicitud, bloquea la fila del Item, aplica el
// movimiento vía ledger.ApplyAdjustment y persiste campos + historial en
// la misma transacción. La verificación de stock insuficiente corre sobre
// el estado comprometido actual, antes de mutar nada.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, itemID string, in dto.StockAdjustmentRequest) (*dto.StockAdjustmentResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	var levels dto.StockLevels
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		before := len(item.History)
		if err := ledger.ApplyAdjustment(item, in.Type, in.Quantity, in.Notes, time.Now()); err != nil {
			return err
		}
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		if err := itemRepo.AppendHistory(item.ID, item.History[before:]); err != nil {
			return err
		}
		levels = dto.StockLevels{
			StockIn:    item.StockIn,
			StockOut:   item.StockOut,
			TotalStock: item.TotalStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockAdjustmentResponse{
		Message: "Stock " + in.Type + " updated successfully",
		Item:    levels,
	}, nil
}
