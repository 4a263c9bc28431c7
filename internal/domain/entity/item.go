package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para Item.
const (
	CategoryAccessory = "accessory"
	CategoryTool      = "tool"
)

// ValidCategory indica si s es una categoría conocida.
func ValidCategory(s string) bool {
	return s == CategoryAccessory || s == CategoryTool
}

// Item representa una línea de inventario (accesorio o herramienta).
// TotalStock es un campo derivado: max(0, StockIn - StockOut). Nunca se
// acepta del caller; se recalcula antes de cada persistencia (ledger.Recompute).
// History es composición exclusiva del Item: solo crece, nunca se edita.
type Item struct {
	ID          string
	Description string
	Unit        string
	Category    string // accessory, tool
	StockIn     decimal.Decimal // acumulado recibido
	StockOut    decimal.Decimal // acumulado despachado
	TotalStock  decimal.Decimal
	MinStock    decimal.Decimal // umbral de reorden, solo informativo
	History     []HistoryRecord
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
