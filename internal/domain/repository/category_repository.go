package repository

import "github.com/jhoicas/mercado-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByName busca por coincidencia exacta del nombre (lo usa el resolver).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) (bool, error)
	Delete(id string) (bool, error)
	IsInUse(id string) (bool, error)
	UsageCount(id string) (int, error)
}
