package memory

import (
	"sort"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
// Reproduce la constraint única sobre el nombre y la guarda de borrado.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepository construye el adaptador sobre el almacén compartido.
func NewCategoryRepository(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

// Create inserta una categoría; nombre duplicado devuelve ErrDuplicate como
// lo haría la constraint única.
func (r *CategoryRepo) Create(category *entity.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	s.categories[category.ID] = *category
	return nil
}

// GetByID devuelve la categoría o nil.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.categories[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

// GetByName busca por nombre exacto, sensible a mayúsculas.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update reemplaza la fila; false si no existe, ErrDuplicate si el nuevo
// nombre choca con otra categoría.
func (r *CategoryRepo) Update(category *entity.Category) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[category.ID]; !ok {
		return false, nil
	}
	for id, c := range s.categories {
		if id != category.ID && c.Name == category.Name {
			return false, domain.ErrDuplicate
		}
	}
	s.categories[category.ID] = *category
	return true, nil
}

// Delete rechaza con ErrInUse si algún ítem referencia la categoría, igual
// que el trigger de la base.
func (r *CategoryRepo) Delete(id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	for _, rec := range s.items {
		if rec.CategoryID != nil && *rec.CategoryID == id {
			return false, domain.ErrInUse
		}
	}
	delete(s.categories, id)
	return true, nil
}

// IsInUse informa si algún ítem referencia la categoría.
func (r *CategoryRepo) IsInUse(id string) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.items {
		if rec.CategoryID != nil && *rec.CategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

// UsageCount cuenta los ítems que referencian la categoría.
func (r *CategoryRepo) UsageCount(id string) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.items {
		if rec.CategoryID != nil && *rec.CategoryID == id {
			n++
		}
	}
	return n, nil
}
