package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/ledger"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, description, unit, category, stock_in, stock_out, total_stock, min_stock, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items.
// Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste el Item y su historial inicial.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Description, item.Unit, item.Category,
		item.StockIn, item.StockOut, item.TotalStock, item.MinStock,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return r.AppendHistory(item.ID, item.History)
}

// GetByID obtiene un Item con historial en orden de inserción.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetForUpdate obtiene un Item bloqueando la fila. Solo dentro de una tx.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.getOne(`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id)
}

// FindByDescriptionForUpdate busca por descripción exacta (trim +
// case-insensitive) dentro de la categoría, bloqueando la fila si existe.
func (r *ItemRepo) FindByDescriptionForUpdate(category, description string) (*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + ` FROM items
		WHERE category = $1 AND LOWER(TRIM(description)) = LOWER(TRIM($2))
		FOR UPDATE`
	return r.getOne(query, category, description)
}

func (r *ItemRepo) getOne(query string, args ...any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&it.ID, &it.Description, &it.Unit, &it.Category,
		&it.StockIn, &it.StockOut, &it.TotalStock, &it.MinStock,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	history, err := loadHistory(r.q, []string{it.ID})
	if err != nil {
		return nil, err
	}
	it.History = history[it.ID]
	return &it, nil
}

// Update persiste los campos base del Item. No toca el historial.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET description = $2, unit = $3, category = $4, stock_in = $5,
		    stock_out = $6, total_stock = $7, min_stock = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Description, item.Unit, item.Category,
		item.StockIn, item.StockOut, item.TotalStock, item.MinStock,
		item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// AppendHistory anexa registros al final del historial (el BIGSERIAL
// materializa el orden de inserción).
func (r *ItemRepo) AppendHistory(itemID string, records []entity.HistoryRecord) error {
	for _, rec := range records {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO item_history (item_id, quantity, movement_type, notes, occurred_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			itemID, rec.Quantity, rec.Type, rec.Notes, rec.Date,
		)
		if err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}
	return nil
}

// Delete elimina el Item; el historial cae por cascada.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Campos de ordenamiento expuestos por la API -> columnas.
var sortColumns = map[string]string{
	"description": "description",
	"unit":        "unit",
	"category":    "category",
	"stockIn":     "stock_in",
	"stockOut":    "stock_out",
	"totalStock":  "total_stock",
	"minStock":    "min_stock",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// List devuelve la página filtrada y el total de coincidencias.
// Los buckets de stockStatus replican ledger.MatchesStatus en SQL; los
// porcentuales exigen stock_in > 0 (caso degenerado: un item sin entradas
// solo es alcanzable vía "out").
func (r *ItemRepo) List(f repository.ItemFilter) ([]*entity.Item, int, error) {
	var where []string
	var args []any

	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf(`category = $%d`, len(args)))
	}
	if f.Search != "" {
		args = append(args, f.Search)
		where = append(where, fmt.Sprintf(`description ILIKE '%%' || $%d || '%%'`, len(args)))
	}
	if f.Unit != "" {
		args = append(args, f.Unit)
		where = append(where, fmt.Sprintf(`unit = $%d`, len(args)))
	}
	switch f.StockStatus {
	case ledger.StatusCritical:
		where = append(where, `stock_in > 0 AND total_stock < stock_in * 0.2`)
	case ledger.StatusLow:
		where = append(where, `stock_in > 0 AND total_stock >= stock_in * 0.2 AND total_stock < stock_in * 0.5`)
	case ledger.StatusGood:
		where = append(where, `stock_in > 0 AND total_stock >= stock_in * 0.5`)
	case ledger.StatusOut:
		where = append(where, `total_stock = 0`)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM items` + whereSQL
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	orderCol, ok := sortColumns[f.SortBy]
	if !ok {
		orderCol = "description"
	}
	direction := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		direction = "DESC"
	}

	offset := (f.Page - 1) * f.Limit
	query := fmt.Sprintf(`SELECT %s FROM items%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		itemColumns, whereSQL, orderCol, direction, len(args)+1, len(args)+2)
	args = append(args, f.Limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := attachHistory(r.q, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// scanItems lee todas las filas de un SELECT con itemColumns.
func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.Description, &it.Unit, &it.Category,
			&it.StockIn, &it.StockOut, &it.TotalStock, &it.MinStock,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// loadHistory carga el historial de varios items en una sola consulta,
// en orden de inserción.
func loadHistory(q Querier, itemIDs []string) (map[string][]entity.HistoryRecord, error) {
	if len(itemIDs) == 0 {
		return map[string][]entity.HistoryRecord{}, nil
	}
	rows, err := q.Query(context.Background(),
		`SELECT item_id, quantity, movement_type, notes, occurred_at
		 FROM item_history WHERE item_id = ANY($1) ORDER BY id`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.HistoryRecord, len(itemIDs))
	for rows.Next() {
		var itemID string
		var rec entity.HistoryRecord
		if err := rows.Scan(&itemID, &rec.Quantity, &rec.Type, &rec.Notes, &rec.Date); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out[itemID] = append(out[itemID], rec)
	}
	return out, rows.Err()
}

// attachHistory puebla History de cada item de la lista.
func attachHistory(q Querier, items []*entity.Item) error {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	history, err := loadHistory(q, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		it.History = history[it.ID]
	}
	return nil
}
