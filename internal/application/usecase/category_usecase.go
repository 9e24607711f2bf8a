package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías, con el chequeo de
// nombre duplicado en aplicación y la guarda "en uso" al borrar.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El duplicado de nombre se verifica por búsqueda
// previa, no solo por la constraint única (esa queda como respaldo ante
// carreras concurrentes).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.Icon != nil {
		cat.Icon = *in.Icon
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(cat), nil
}

// Update actualización parcial. Si cambia el nombre se repite el chequeo de
// duplicado contra el resto de categorías.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != current.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		current.Name = *in.Name
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Icon != nil {
		current.Icon = *in.Icon
	}
	current.UpdatedAt = time.Now()
	found, err := uc.repo.Update(current)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return dto.ToCategoryResponse(current), nil
}

// GetByID obtiene una categoría; con includeCount agrega cuántos ítems la
// referencian.
func (uc *CategoryUseCase) GetByID(id string, includeCount bool) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToCategoryResponse(cat)
	if includeCount {
		n, err := uc.repo.UsageCount(id)
		if err != nil {
			return nil, err
		}
		resp.ItemCount = &n
	}
	return resp, nil
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(includeCount bool) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp := dto.ToCategoryResponse(c)
		if includeCount {
			n, err := uc.repo.UsageCount(c.ID)
			if err != nil {
				return nil, err
			}
			resp.ItemCount = &n
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Delete rehúsa borrar una categoría referenciada por algún ítem (ErrInUse)
// en lugar de dejar que reviente la FK; si no está en uso, borra.
func (uc *CategoryUseCase) Delete(id string) error {
	inUse, err := uc.repo.IsInUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrInUse
	}
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
