package memory

import (
	"sort"
	"strings"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria del puerto ItemRepository. Reproduce
// las invariantes que en PostgreSQL imponen la FK y el CHECK de cantidad.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador sobre el almacén compartido.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// Create inserta un ítem validando referencia de categoría y cantidad.
func (r *ItemRepo) Create(item *entity.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := checkItem(s, item); err != nil {
		return err
	}
	s.nextSeq++
	rec := itemRecord{Item: *item, seq: s.nextSeq}
	rec.Category = nil
	s.items[item.ID] = rec
	return nil
}

// GetByID devuelve el ítem con su detalle de categoría poblado, o nil.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	item := rec.Item
	attachCategory(s, &item)
	return &item, nil
}

// List filtra, ordena por fecha de creación descendente y pagina.
func (r *ItemRepo) List(f repository.ItemFilter) ([]*entity.Item, int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]itemRecord, 0, len(s.items))
	for _, rec := range s.items {
		if f.CategoryID != nil && (rec.CategoryID == nil || *rec.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Purchased != nil && rec.Purchased != *f.Purchased {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(f.Search)) {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	total := len(recs)
	start := f.Offset
	if start > total {
		start = total
	}
	end := start + f.Limit
	if f.Limit <= 0 || end > total {
		end = total
	}

	out := make([]*entity.Item, 0, end-start)
	for _, rec := range recs[start:end] {
		item := rec.Item
		attachCategory(s, &item)
		out = append(out, &item)
	}
	return out, total, nil
}

// Update reemplaza la fila completa; false si el ítem no existe.
func (r *ItemRepo) Update(item *entity.Item) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items[item.ID]
	if !ok {
		return false, nil
	}
	if err := checkItem(s, item); err != nil {
		return false, err
	}
	rec.Item = *item
	rec.Category = nil
	s.items[item.ID] = rec
	return true, nil
}

// Delete elimina por ID; informa si había fila.
func (r *ItemRepo) Delete(id string) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// checkItem emula las constraints de la base: cantidad no negativa y
// categoría referenciada existente. Llamar con el lock tomado.
func checkItem(s *Store, item *entity.Item) error {
	if item.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if item.CategoryID != nil {
		if _, ok := s.categories[*item.CategoryID]; !ok {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// attachCategory puebla el detalle de categoría como lo haría el LEFT JOIN.
// Llamar con el lock tomado.
func attachCategory(s *Store, item *entity.Item) {
	item.Category = nil
	if item.CategoryID == nil {
		return
	}
	if cat, ok := s.categories[*item.CategoryID]; ok {
		c := cat
		item.Category = &c
	}
}
