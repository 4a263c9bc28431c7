package repository

import (
	"github.com/reaksa/stockford-api/internal/domain/entity"
)

// ItemFilter criterios de listado para GET /api/items.
// Search es substring case-insensitive sobre description. StockStatus es
// uno de los buckets de ledger (critical/low/good/out). SortBy usa los
// nombres de campo expuestos por la API (description, stockIn, totalStock...).
type ItemFilter struct {
	Category    string
	Search      string
	Unit        string
	StockStatus string
	SortBy      string
	SortOrder   string // asc | desc
	Page        int
	Limit       int
}

// ItemRepository puerto de persistencia para Item y su historial.
// Los métodos devuelven (nil, nil) cuando el recurso no existe.
// El historial pertenece al Item: se anexa, nunca se edita ni borra suelto.
type ItemRepository interface {
	// Create persiste el Item junto con su historial inicial.
	Create(item *entity.Item) error
	// GetByID carga el Item con historial en orden de inserción.
	GetByID(id string) (*entity.Item, error)
	// GetForUpdate carga el Item bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetForUpdate(id string) (*entity.Item, error)
	// FindByDescriptionForUpdate busca por descripción exacta (trim +
	// case-insensitive) dentro de una categoría, bloqueando la fila si existe.
	FindByDescriptionForUpdate(category, description string) (*entity.Item, error)
	// Update persiste los campos base del Item (no toca el historial).
	Update(item *entity.Item) error
	// AppendHistory anexa registros nuevos al final del historial del Item.
	AppendHistory(itemID string, records []entity.HistoryRecord) error
	// Delete elimina el Item y su historial. ErrNotFound si no existe.
	Delete(id string) error
	// List devuelve la página filtrada y el total de coincidencias.
	List(f ItemFilter) ([]*entity.Item, int, error)
}
