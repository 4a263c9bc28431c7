package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del historial de un Item.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// ValidMovementType indica si s es un tipo de movimiento conocido.
func ValidMovementType(s string) bool {
	return s == MovementTypeIn || s == MovementTypeOut
}

// HistoryRecord representa un movimiento de stock ya registrado.
// Es inmutable una vez anexado al historial; el orden de almacenamiento
// es el orden de inserción, no el cronológico.
type HistoryRecord struct {
	Quantity decimal.Decimal
	Type     string // in, out
	Notes    string
	Date     time.Time
}
