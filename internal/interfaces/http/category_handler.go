package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        includeCount  query  string  false  "Incluir cuántos ítems usan cada categoría (true/false)"
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	includeCount := c.Query("includeCount") == "true"
	out, err := h.uc.List(includeCount)
	if err != nil {
		return respondDomainError(c, err, "categoría no encontrada")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   len(out),
		"data":    out,
	})
}

// GetByID godoc
// @Summary      Obtener una categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id            path   string  true   "ID de la categoría"
// @Param        includeCount  query  string  false  "Incluir cuántos ítems la usan (true/false)"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	includeCount := c.Query("includeCount") == "true"
	out, err := h.uc.GetByID(id, includeCount)
	if err != nil {
		return respondDomainError(c, err, "categoría no encontrada")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear una categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := dto.Validate(in); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err, "categoría no encontrada")
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar una categoría (parcial)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := dto.Validate(in); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondDomainError(c, err, "categoría no encontrada")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar una categoría
// @Description  Falla con 409 si algún ítem referencia la categoría.
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err, "categoría no encontrada")
	}
	return respondMessage(c, fiber.StatusOK, "categoría eliminada")
}
