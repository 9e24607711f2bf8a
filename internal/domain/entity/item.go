package entity

import "time"

// Item representa un ítem de la lista de mercado. CategoryID es opcional
// (nil = sin categoría); la referencia es débil: borrar el ítem nunca borra
// la categoría.
type Item struct {
	ID         string
	Name       string
	Quantity   int
	CategoryID *string
	Purchased  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Category detalle de la categoría referenciada, poblado en lecturas
	// con JOIN. Nil cuando CategoryID es nil.
	Category *Category
}
