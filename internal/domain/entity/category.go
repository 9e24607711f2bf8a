package entity

import "time"

// Category representa una categoría de ítems de la lista de mercado.
// El nombre es único (exacto, sensible a mayúsculas).
type Category struct {
	ID          string
	Name        string
	Description string // vacío si no se proporcionó
	Icon        string // un solo glifo emoji, vacío si no se proporcionó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
