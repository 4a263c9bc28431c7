package inventory

import (
	"context"

	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza que incremento, anexo de historial
// y recompute se confirmen como una sola unidad (read-modify-write atómico
// por Item).
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.ItemRepository) error) error
}
