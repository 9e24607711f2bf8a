package dto

import (
	"time"

	"github.com/jhoicas/mercado-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un ítem. Quantity es puntero para
// aceptar 0 explícito. Debe venir categoryName o categoryId (lo verifica
// el handler; el resolver los traduce a un categoryId persistido).
type CreateItemRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Quantity     *int    `json:"quantity" validate:"required,min=0"`
	CategoryID   *string `json:"categoryId" validate:"omitempty,uuid"`
	CategoryName *string `json:"categoryName" validate:"omitempty,min=1,max=50"`
}

// UpdateItemRequest entrada para actualización parcial. Un campo ausente no
// toca el valor almacenado. CategoryID es tri-estado: null explícito
// descategoriza el ítem. Si viene categoryName no vacío, se re-resuelve y
// tiene prioridad sobre categoryId.
type UpdateItemRequest struct {
	Name         *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Quantity     *int           `json:"quantity" validate:"omitempty,min=0"`
	CategoryID   NullableString `json:"categoryId" validate:"-"`
	CategoryName *string        `json:"categoryName" validate:"omitempty,min=1,max=50"`
	Purchased    *bool          `json:"purchased"`
}

// HasChanges indica si la petición trae al menos un campo a modificar.
func (r UpdateItemRequest) HasChanges() bool {
	return r.Name != nil || r.Quantity != nil || r.CategoryID.Set ||
		(r.CategoryName != nil && *r.CategoryName != "") || r.Purchased != nil
}

// ItemQuery parámetros de listado ya validados por el handler.
type ItemQuery struct {
	Page       int
	Limit      int
	CategoryID *string
	Purchased  *bool
	Search     string
}

// ItemResponse salida de un ítem, con el detalle de categoría embebido
// cuando categoryId no es nulo.
type ItemResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	CategoryID *string           `json:"categoryId"`
	Category   *CategoryResponse `json:"category"`
	Purchased  bool              `json:"purchased"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ToItemResponse mapea la entidad a su representación HTTP.
func ToItemResponse(it *entity.Item) *ItemResponse {
	if it == nil {
		return nil
	}
	resp := &ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		CategoryID: it.CategoryID,
		Purchased:  it.Purchased,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
	if it.Category != nil {
		resp.Category = ToCategoryResponse(it.Category)
	}
	return resp
}
