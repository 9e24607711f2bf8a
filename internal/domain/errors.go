package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("ya existe una categoría con ese nombre")
	ErrInUse        = errors.New("la categoría está en uso por al menos un ítem")
	ErrInvalidInput = errors.New("entrada inválida")
)
