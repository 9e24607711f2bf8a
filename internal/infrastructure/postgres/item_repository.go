package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemJoinedColumns = `
	si.id, si.name, si.quantity, si.category_id, si.purchased, si.created_at, si.updated_at,
	sc.name, sc.description, sc.icon, sc.created_at, sc.updated_at`

// Create persiste un nuevo ítem. Una FK inválida o una cantidad fuera del
// CHECK se reportan como entrada inválida, no como error interno.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO shopping_items (id, name, quantity, category_id, purchased, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.CategoryID, item.Purchased,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID con el detalle de su categoría (LEFT JOIN).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT ` + itemJoinedColumns + `
		FROM shopping_items si
		LEFT JOIN shopping_categories sc ON si.category_id = sc.id
		WHERE si.id = $1`
	item, err := scanItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List lista ítems con filtros opcionales y paginación, más el total sin
// paginar. Orden: más recientes primero.
func (r *ItemRepo) List(f repository.ItemFilter) ([]*entity.Item, int, error) {
	const where = `
		WHERE ($1::uuid IS NULL OR si.category_id = $1)
		  AND ($2::boolean IS NULL OR si.purchased = $2)
		  AND ($3::text IS NULL OR si.name ILIKE '%' || $3 || '%')`

	var search *string
	if f.Search != "" {
		search = &f.Search
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM shopping_items si` + where
	if err := r.q.QueryRow(context.Background(), countQuery, f.CategoryID, f.Purchased, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `
		SELECT ` + itemJoinedColumns + `
		FROM shopping_items si
		LEFT JOIN shopping_categories sc ON si.category_id = sc.id` + where + `
		ORDER BY si.created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, f.CategoryID, f.Purchased, search, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, total, rows.Err()
}

// Update actualiza la fila completa (el merge parcial ocurre en el caso de
// uso). Devuelve false si el ítem no existe.
func (r *ItemRepo) Update(item *entity.Item) (bool, error) {
	query := `
		UPDATE shopping_items
		SET name = $2, quantity = $3, category_id = $4, purchased = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.CategoryID, item.Purchased, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) {
			return false, domain.ErrInvalidInput
		}
		return false, fmt.Errorf("update item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un ítem por ID; informa si había fila que borrar.
func (r *ItemRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shopping_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// scanItem mapea una fila del JOIN ítem-categoría. Las columnas de categoría
// vienen en NULL cuando el ítem no tiene categoría.
func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	var catName, catDesc, catIcon *string
	var catCreated, catUpdated *time.Time
	err := row.Scan(
		&it.ID, &it.Name, &it.Quantity, &it.CategoryID, &it.Purchased, &it.CreatedAt, &it.UpdatedAt,
		&catName, &catDesc, &catIcon, &catCreated, &catUpdated,
	)
	if err != nil {
		return nil, err
	}
	if it.CategoryID != nil && catName != nil {
		cat := &entity.Category{ID: *it.CategoryID, Name: *catName}
		if catDesc != nil {
			cat.Description = *catDesc
		}
		if catIcon != nil {
			cat.Icon = *catIcon
		}
		if catCreated != nil {
			cat.CreatedAt = *catCreated
		}
		if catUpdated != nil {
			cat.UpdatedAt = *catUpdated
		}
		it.Category = cat
	}
	return &it, nil
}
