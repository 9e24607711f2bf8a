package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, description, icon, created_at, updated_at`

// Create persiste una nueva categoría. La constraint única sobre name es el
// respaldo del chequeo de duplicado en aplicación: si dos peticiones
// concurrentes pasan la búsqueda previa, la perdedora recibe ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO shopping_categories (id, name, description, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Icon,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM shopping_categories WHERE id = $1`
	return r.getOne(query, id)
}

// GetByName busca por nombre exacto (sensible a mayúsculas); lo usa el
// resolver de categorías y el chequeo de duplicados.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM shopping_categories WHERE name = $1`
	return r.getOne(query, name)
}

func (r *CategoryRepo) getOne(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM shopping_categories ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza la fila completa. Devuelve false si la categoría no existe.
func (r *CategoryRepo) Update(category *entity.Category) (bool, error) {
	query := `
		UPDATE shopping_categories
		SET name = $2, description = $3, icon = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Icon, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una categoría por ID. El trigger de la base (y la FK)
// protegen contra el borrado de una categoría referenciada aunque el caso de
// uso ya haya pasado por IsInUse; ese fallo se mapea a ErrInUse.
func (r *CategoryRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shopping_categories WHERE id = $1`, id)
	if err != nil {
		if isDeleteGuard(err) {
			return false, domain.ErrInUse
		}
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IsInUse informa si algún ítem referencia la categoría.
func (r *CategoryRepo) IsInUse(id string) (bool, error) {
	var inUse bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM shopping_items WHERE category_id = $1)`, id,
	).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("category in use: %w", err)
	}
	return inUse, nil
}

// UsageCount cuenta los ítems que referencian la categoría.
func (r *CategoryRepo) UsageCount(id string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM shopping_items WHERE category_id = $1`, id,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("category usage count: %w", err)
	}
	return n, nil
}
