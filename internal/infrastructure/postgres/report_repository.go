package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CriticalStock devuelve los items con totalStock < 0.2 * stockIn.
// Misma condición que el filtro stockStatus=critical del listado.
func (r *ReportRepo) CriticalStock() ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE stock_in > 0 AND total_stock < stock_in * 0.2
		ORDER BY description`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("critical stock: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if err := attachHistory(r.pool, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsWithMovements devuelve los items de la categoría con al menos un
// movimiento en [from, to), con historial completo (el caso de uso filtra
// la ventana por registro).
func (r *ReportRepo) ItemsWithMovements(category string, from, to time.Time) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items i
		WHERE i.category = $1 AND EXISTS (
			SELECT 1 FROM item_history h
			WHERE h.item_id = i.id AND h.occurred_at >= $2 AND h.occurred_at < $3
		)
		ORDER BY i.description`
	rows, err := r.pool.Query(context.Background(), query, category, from, to)
	if err != nil {
		return nil, fmt.Errorf("items with movements: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}
	if err := attachHistory(r.pool, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SummaryByCategory agrupa totales por categoría. COALESCE protege el
// caso sin filas.
func (r *ReportRepo) SummaryByCategory() ([]repository.CategorySummary, error) {
	query := `
		SELECT category,
		       COUNT(*)                   AS total_items,
		       COALESCE(SUM(stock_in), 0)    AS total_stock_in,
		       COALESCE(SUM(stock_out), 0)   AS total_stock_out,
		       COALESCE(SUM(total_stock), 0) AS total_current_stock
		FROM items
		GROUP BY category
		ORDER BY category`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("summary by category: %w", err)
	}
	defer rows.Close()

	var out []repository.CategorySummary
	for rows.Next() {
		var row repository.CategorySummary
		if err := rows.Scan(
			&row.Category, &row.TotalItems,
			&row.TotalStockIn, &row.TotalStockOut, &row.TotalCurrentStock,
		); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
