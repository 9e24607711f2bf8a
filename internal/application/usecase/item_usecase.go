package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para ítems de la lista. Las escrituras que
// tocan ítem y categoría (create/update) corren dentro de una transacción
// vía TxRunner; las lecturas van directo al repositorio del pool.
type ItemUseCase struct {
	txRunner TxRunner
	items    repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, items repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, items: items}
}

// resolveCategoryID traduce la referencia de categoría del cliente
// (categoryName o categoryId) a un categoryId persistido:
//   - con categoryName: busca por nombre exacto y, si no existe, crea la
//     categoría (descripción e icono vacíos) dentro de la transacción actual;
//   - con solo categoryId: lo devuelve tal cual (la FK valida existencia);
//   - sin ninguno: nil (ítem sin categoría).
func resolveCategoryID(categories repository.CategoryRepository, categoryID, categoryName *string) (*string, error) {
	if categoryName != nil && *categoryName != "" {
		existing, err := categories.GetByName(*categoryName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &existing.ID, nil
		}
		now := time.Now()
		cat := &entity.Category{
			ID:        uuid.New().String(),
			Name:      *categoryName,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categories.Create(cat); err != nil {
			return nil, err
		}
		return &cat.ID, nil
	}
	if categoryID != nil && *categoryID != "" {
		return categoryID, nil
	}
	return nil, nil
}

// Create resuelve la categoría e inserta el ítem en una sola transacción.
// Si la inserción falla, el rollback deshace también la categoría que el
// resolver acabara de crear.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  *in.Quantity,
		Purchased: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, categories repository.CategoryRepository) error {
		categoryID, err := resolveCategoryID(categories, in.CategoryID, in.CategoryName)
		if err != nil {
			return err
		}
		item.CategoryID = categoryID
		return items.Create(item)
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.items.GetByID(item.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(created), nil
}

// Update aplica una actualización parcial con la misma forma transaccional
// de Create. Un campo ausente no cambia nada; categoryId null descategoriza;
// categoryName no vacío se re-resuelve y manda sobre categoryId. Sin campos
// que cambiar es un no-op que devuelve la fila actual.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, categories repository.CategoryRepository) error {
		current, err := items.GetByID(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		changed := false
		if in.Name != nil {
			current.Name = *in.Name
			changed = true
		}
		if in.Quantity != nil {
			current.Quantity = *in.Quantity
			changed = true
		}
		if in.Purchased != nil {
			current.Purchased = *in.Purchased
			changed = true
		}
		if in.CategoryName != nil && *in.CategoryName != "" {
			categoryID, err := resolveCategoryID(categories, nil, in.CategoryName)
			if err != nil {
				return err
			}
			current.CategoryID = categoryID
			changed = true
		} else if in.CategoryID.Set {
			current.CategoryID = in.CategoryID.Value
			changed = true
		}

		if !changed {
			return nil
		}
		current.UpdatedAt = time.Now()
		found, err := items.Update(current)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToItemResponse(updated), nil
}

// GetByID obtiene un ítem con su detalle de categoría.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToItemResponse(item), nil
}

// List lista ítems con filtros y paginación. Devuelve además el total sin
// paginar para calcular totalPages.
func (uc *ItemUseCase) List(q dto.ItemQuery) ([]dto.ItemResponse, int, error) {
	offset := (q.Page - 1) * q.Limit
	list, total, err := uc.items.List(repository.ItemFilter{
		CategoryID: q.CategoryID,
		Purchased:  q.Purchased,
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *dto.ToItemResponse(it))
	}
	return out, total, nil
}

// Delete elimina un ítem por ID.
func (uc *ItemUseCase) Delete(id string) error {
	removed, err := uc.items.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
