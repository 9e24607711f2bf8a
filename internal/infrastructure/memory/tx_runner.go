package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner versión en memoria del runner transaccional: toma un snapshot del
// almacén, ejecuta el callback y, si falla, repone el snapshot. Eso preserva
// la invariante de rollback (una categoría auto-creada desaparece si la
// escritura del ítem falla). Las transacciones se serializan con un mutex
// propio; suficiente para un backend de desarrollo y tests.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios sobre el mismo almacén y revierte el
// estado completo si fn devuelve error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	items, categories, nextSeq := r.store.snapshot()
	if err := fn(NewItemRepository(r.store), NewCategoryRepository(r.store)); err != nil {
		r.store.restore(items, categories, nextSeq)
		return err
	}
	return nil
}
