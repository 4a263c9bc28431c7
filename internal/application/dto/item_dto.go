package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los nombres JSON son camelCase: es el contrato que consume el dashboard.

// CreateItemRequest body para POST /api/items.
// No existe campo totalStock a propósito: el total es derivado y se
// recalcula siempre; un valor enviado por el caller se descarta.
type CreateItemRequest struct {
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	StockIn     decimal.Decimal `json:"stockIn"`
	StockOut    decimal.Decimal `json:"stockOut"`
	MinStock    decimal.Decimal `json:"minStock"`
}

// UpdateItemRequest body para PUT /api/items (actualización parcial).
// Es el camino de corrección administrativa: sobrescribe campos sin dejar
// rastro en el historial. totalStock tampoco se acepta aquí.
type UpdateItemRequest struct {
	Description *string          `json:"description"`
	Unit        *string          `json:"unit"`
	Category    *string          `json:"category"`
	StockIn     *decimal.Decimal `json:"stockIn"`
	StockOut    *decimal.Decimal `json:"stockOut"`
	MinStock    *decimal.Decimal `json:"minStock"`
}

// HistoryEntryResponse un movimiento del historial.
type HistoryEntryResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Type     string          `json:"type"`
	Notes    string          `json:"notes"`
	Date     time.Time       `json:"date"`
}

// ItemResponse representación completa de un Item.
type ItemResponse struct {
	ID          string                 `json:"id"`
	Description string                 `json:"description"`
	Unit        string                 `json:"unit"`
	Category    string                 `json:"category"`
	StockIn     decimal.Decimal        `json:"stockIn"`
	StockOut    decimal.Decimal        `json:"stockOut"`
	TotalStock  decimal.Decimal        `json:"totalStock"`
	MinStock    decimal.Decimal        `json:"minStock"`
	History     []HistoryEntryResponse `json:"history"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// ItemListResponse página de items para GET /api/items.
type ItemListResponse struct {
	Items       []ItemResponse `json:"items"`
	Total       int            `json:"total"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

// StockAdjustmentRequest body para POST /api/items/:id/stock-adjustment.
type StockAdjustmentRequest struct {
	Type     string          `json:"type"` // in | out
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
}

// StockLevels niveles resultantes tras un ajuste.
type StockLevels struct {
	StockIn    decimal.Decimal `json:"stockIn"`
	StockOut   decimal.Decimal `json:"stockOut"`
	TotalStock decimal.Decimal `json:"totalStock"`
}

// StockAdjustmentResponse respuesta del ajuste de stock.
type StockAdjustmentResponse struct {
	Message string      `json:"message"`
	Item    StockLevels `json:"item"`
}

// ImportRequest body para POST /api/items/import. Cada fila es un mapa
// encabezado -> valor tal como lo produce el parser de hoja de cálculo
// del frontend (valores string o numéricos).
type ImportRequest struct {
	Category string                   `json:"category"`
	Data     []map[string]interface{} `json:"data"`
}

// ImportResult resultado de la importación masiva. Errors conserva el
// orden de las filas; una fila mala no aborta el lote.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}
