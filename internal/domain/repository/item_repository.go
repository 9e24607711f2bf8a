package repository

import "github.com/jhoicas/mercado-api/internal/domain/entity"

// ItemFilter filtros de listado para ítems. Los campos nil no filtran.
type ItemFilter struct {
	CategoryID *string
	Purchased  *bool
	Search     string // subcadena sobre el nombre, sin distinguir mayúsculas
	Limit      int
	Offset     int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las lecturas devuelven el ítem con el detalle de categoría poblado.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List(filter ItemFilter) ([]*entity.Item, int, error)
	Update(item *entity.Item) (bool, error)
	Delete(id string) (bool, error)
}
