// Package ledger mantiene consistentes StockIn, StockOut, TotalStock y el
// historial de un Item. Todos los caminos de escritura (create, update,
// ajuste de stock, importación) pasan por Recompute antes de persistir;
// no hay hooks implícitos en la capa de almacenamiento.
package ledger

import (
	"strings"
	"time"

	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Buckets de estado de stock relativos a StockIn.
const (
	StatusCritical = "critical" // totalStock < 0.2 * stockIn
	StatusLow      = "low"      // 0.2*stockIn <= totalStock < 0.5*stockIn
	StatusGood     = "good"     // totalStock >= 0.5 * stockIn
	StatusOut      = "out"      // totalStock == 0
)

var (
	pctCritical = decimal.RequireFromString("0.2")
	pctGood     = decimal.RequireFromString("0.5")
)

// Recompute restablece el invariante TotalStock = max(0, StockIn - StockOut)
// y refresca UpdatedAt. Es función pura sobre el Item: sin validación, sin
// acceso a almacenamiento. Debe ejecutarse incondicionalmente antes de
// persistir un Item, venga de donde venga el candidato.
func Recompute(it *entity.Item, now time.Time) {
	total := it.StockIn.Sub(it.StockOut)
	if total.IsNegative() {
		total = decimal.Zero
	}
	it.TotalStock = total
	it.UpdatedAt = now
}

// DefaultNotes devuelve la nota autogenerada para un movimiento sin notas.
func DefaultNotes(movementType string) string {
	return strings.ToUpper(movementType) + " adjustment"
}

// ApplyAdjustment aplica un movimiento in/out sobre el Item: valida,
// incrementa el acumulado correspondiente, anexa un HistoryRecord y
// ejecuta Recompute. Si la validación falla no muta nada.
//
// Salidas que exceden el TotalStock actual se rechazan con
// InsufficientStockError (todo o nada por solicitud).
func ApplyAdjustment(it *entity.Item, movementType string, quantity decimal.Decimal, notes string, now time.Time) error {
	if !entity.ValidMovementType(movementType) {
		return domain.ErrInvalidInput
	}
	if !quantity.IsPositive() {
		return domain.ErrInvalidInput
	}
	if movementType == entity.MovementTypeOut && quantity.GreaterThan(it.TotalStock) {
		return &domain.InsufficientStockError{Available: it.TotalStock, Requested: quantity}
	}

	if movementType == entity.MovementTypeIn {
		it.StockIn = it.StockIn.Add(quantity)
	} else {
		it.StockOut = it.StockOut.Add(quantity)
	}
	if notes == "" {
		notes = DefaultNotes(movementType)
	}
	it.History = append(it.History, entity.HistoryRecord{
		Quantity: quantity,
		Type:     movementType,
		Notes:    notes,
		Date:     now,
	})
	Recompute(it, now)
	return nil
}

// MatchesStatus indica si el Item cae en el bucket dado. Los buckets
// porcentuales (critical/low/good) exigen StockIn > 0: un Item sin
// entradas no clasifica en ninguno de ellos y solo es alcanzable vía
// "out". Los buckets no son excluyentes entre sí (un Item con
// totalStock == 0 y stockIn > 0 es "out" y también "critical").
func MatchesStatus(it *entity.Item, status string) bool {
	switch status {
	case StatusCritical:
		return it.StockIn.IsPositive() && it.TotalStock.LessThan(it.StockIn.Mul(pctCritical))
	case StatusLow:
		return it.StockIn.IsPositive() &&
			it.TotalStock.GreaterThanOrEqual(it.StockIn.Mul(pctCritical)) &&
			it.TotalStock.LessThan(it.StockIn.Mul(pctGood))
	case StatusGood:
		return it.StockIn.IsPositive() && it.TotalStock.GreaterThanOrEqual(it.StockIn.Mul(pctGood))
	case StatusOut:
		return it.TotalStock.IsZero()
	default:
		return false
	}
}

// ValidStatus indica si s es un bucket conocido.
func ValidStatus(s string) bool {
	switch s {
	case StatusCritical, StatusLow, StatusGood, StatusOut:
		return true
	}
	return false
}
