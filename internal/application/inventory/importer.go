package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/ledger"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// importNotes etiqueta fija de los movimientos creados por importación.
const importNotes = "Imported from Excel"

// ImportUseCase importación masiva de filas de hoja de cálculo.
//
// Cada fila se procesa de forma secuencial e independiente, con su propia
// transacción: una fila mala se registra en Errors y no aborta el lote, y
// una fila posterior ve los commits de las anteriores (dos filas con la
// misma descripción en un archivo acumulan correctamente). Solo falla
// completo ante un fallo sistémico: lote vacío, categoría inválida o lote
// por encima del límite configurado.
type ImportUseCase struct {
	txRunner TxRunner
	maxRows  int
}

// NewImportUseCase construye el caso de uso. maxRows <= 0 desactiva el límite.
func NewImportUseCase(txRunner TxRunner, maxRows int) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, maxRows: maxRows}
}

// Import procesa el lote y devuelve {created, updated, errors}.
func (uc *ImportUseCase) Import(ctx context.Context, in dto.ImportRequest) (*dto.ImportResult, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if uc.maxRows > 0 && len(in.Data) > uc.maxRows {
		return nil, fmt.Errorf("%w: lote de %d filas supera el máximo de %d", domain.ErrInvalidInput, len(in.Data), uc.maxRows)
	}

	result := &dto.ImportResult{Errors: []string{}}

	for i, row := range in.Data {
		rowNum := i + 1

		description, okDesc := resolveColumn(row, descriptionAliases)
		unit, okUnit := resolveColumn(row, unitAliases)
		if !okDesc || !okUnit {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Row %d: Missing required fields (Description: %q, Unit: %q)", rowNum, description, unit))
			continue
		}

		rawIn, inPresent := resolveColumn(row, stockInAliases)
		rawOut, outPresent := resolveColumn(row, stockOutAliases)
		stockIn, errIn := parseQuantity(rawIn, inPresent)
		stockOut, errOut := parseQuantity(rawOut, outPresent)
		if errIn != nil || errOut != nil {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"Row %d: Invalid stock values (Stock In: %q, Stock Out: %q)", rowNum, rawIn, rawOut))
			continue
		}

		created, err := uc.importRow(ctx, in.Category, description, unit, stockIn, stockOut)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// importRow aplica una fila en su propia transacción. La importación es
// aditiva: si el Item existe (match exacto de descripción, trim +
// case-insensitive, dentro de la categoría) suma sobre los acumulados, con
// cero, uno o dos registros de historial según las direcciones con valor.
func (uc *ImportUseCase) importRow(ctx context.Context, category, description, unit string,
	stockIn, stockOut decimal.Decimal) (created bool, err error) {

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository) error {
		existing, err := itemRepo.FindByDescriptionForUpdate(category, description)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.StockIn = existing.StockIn.Add(stockIn)
			existing.StockOut = existing.StockOut.Add(stockOut)
			var records []entity.HistoryRecord
			if stockIn.IsPositive() {
				records = append(records, entity.HistoryRecord{
					Quantity: stockIn, Type: entity.MovementTypeIn, Notes: importNotes, Date: now,
				})
			}
			if stockOut.IsPositive() {
				records = append(records, entity.HistoryRecord{
					Quantity: stockOut, Type: entity.MovementTypeOut, Notes: importNotes, Date: now,
				})
			}
			ledger.Recompute(existing, now)
			if err := itemRepo.Update(existing); err != nil {
				return err
			}
			return itemRepo.AppendHistory(existing.ID, records)
		}

		item := &entity.Item{
			ID:          uuid.New().String(),
			Description: strings.TrimSpace(description),
			Unit:        strings.TrimSpace(unit),
			Category:    category,
			StockIn:     stockIn,
			StockOut:    stockOut,
			CreatedAt:   now,
		}
		if stockIn.IsPositive() {
			item.History = append(item.History, entity.HistoryRecord{
				Quantity: stockIn, Type: entity.MovementTypeIn, Notes: importNotes, Date: now,
			})
		}
		ledger.Recompute(item, now)
		created = true
		return itemRepo.Create(item)
	})
	return created, err
}
