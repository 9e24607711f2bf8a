package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	CategoryUC *usecase.CategoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ítems de la lista de mercado
	shopping := api.Group("/shopping")
	itemHandler := NewItemHandler(deps.ItemUC)
	shopping.Get("/", itemHandler.List)
	shopping.Post("/", itemHandler.Create)
	shopping.Get("/:id", itemHandler.GetByID)
	shopping.Put("/:id", itemHandler.Update)
	shopping.Delete("/:id", itemHandler.Delete)

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
}
