package usecase

import (
	"context"

	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del almacén, entregando
// repositorios atados a esa transacción. Si fn devuelve error se revierte
// todo lo escrito (incluida una categoría auto-creada por el resolver);
// si no, se confirma. Implementado por postgres.TxRunner y memory.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
	) error) error
}
