package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// beginner lo implementan *pgxpool.Pool y los pools de pgxmock.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Cada Run abre una transacción, entrega repositorios atados a ella y hace
// Commit si el callback termina bien o Rollback si devuelve error; la
// transacción nunca sobrevive a la llamada.
type TxRunner struct {
	db beginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db beginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido es inocuo tras un Commit exitoso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	categoryRepo := NewCategoryRepository(tx)

	if err := fn(itemRepo, categoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
