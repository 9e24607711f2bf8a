package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para los ítems de la lista.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems de la lista de mercado
// @Tags         shopping
// @Produce      json
// @Param        page        query  string  false  "Página (entero, desde 1)"
// @Param        limit       query  string  false  "Tamaño de página (máx 100)"
// @Param        categoryId  query  string  false  "Filtrar por categoría (UUID)"
// @Param        purchased   query  string  false  "Filtrar por comprado (true/false)"
// @Param        search      query  string  false  "Buscar por nombre"
// @Success      200  {object}  dto.ListResponse
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/shopping [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	q, errs := parseItemQuery(c)
	if len(errs) > 0 {
		return respondValidation(c, errs)
	}
	items, total, err := h.uc.List(q)
	if err != nil {
		return respondDomainError(c, err, "ítem no encontrado")
	}
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return c.Status(fiber.StatusOK).JSON(dto.ListResponse{
		Success:    true,
		Count:      len(items),
		Total:      total,
		Page:       q.Page,
		TotalPages: totalPages,
		Data:       items,
	})
}

// GetByID godoc
// @Summary      Obtener un ítem por ID
// @Tags         shopping
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/shopping/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err, "ítem no encontrado")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Crear un ítem
// @Description  Debe venir categoryName o categoryId; un categoryName sin categoría existente la crea en la misma transacción.
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/shopping [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := dto.Validate(in); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	// Al menos una referencia de categoría.
	if (in.CategoryName == nil || *in.CategoryName == "") && (in.CategoryID == nil || *in.CategoryID == "") {
		return respondValidation(c, []dto.FieldError{
			{Field: "categoryId", Message: "debe proporcionarse categoryName o categoryId"},
		})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err, "ítem no encontrado")
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Update godoc
// @Summary      Actualizar un ítem (parcial)
// @Description  Campos ausentes quedan intactos; categoryId en null descategoriza; categoryName se re-resuelve y manda sobre categoryId.
// @Tags         shopping
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/shopping/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if errs := dto.Validate(in); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	if in.CategoryID.Set && in.CategoryID.Value != nil {
		if _, err := uuid.Parse(*in.CategoryID.Value); err != nil {
			return respondValidation(c, []dto.FieldError{{Field: "categoryId", Message: "categoryId debe ser un UUID válido"}})
		}
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondDomainError(c, err, "ítem no encontrado")
	}
	return respondData(c, fiber.StatusOK, out)
}

// Delete godoc
// @Summary      Eliminar un ítem
// @Tags         shopping
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/shopping/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return respondValidation(c, []dto.FieldError{{Field: "id", Message: "id debe ser un UUID válido"}})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondDomainError(c, err, "ítem no encontrado")
	}
	return respondMessage(c, fiber.StatusOK, "ítem eliminado")
}

// parseItemQuery valida los parámetros de listado; los inválidos se reportan
// por campo.
func parseItemQuery(c *fiber.Ctx) (dto.ItemQuery, []dto.FieldError) {
	q := dto.ItemQuery{Page: 1, Limit: 10}
	var errs []dto.FieldError

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, dto.FieldError{Field: "page", Message: "page debe ser un número"})
		} else {
			q.Page = n
		}
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, dto.FieldError{Field: "limit", Message: "limit debe ser un número"})
		} else {
			if n > 100 {
				n = 100
			}
			q.Limit = n
		}
	}
	if raw := c.Query("categoryId"); raw != "" {
		if _, err := uuid.Parse(raw); err != nil {
			errs = append(errs, dto.FieldError{Field: "categoryId", Message: "categoryId debe ser un UUID válido"})
		} else {
			v := raw
			q.CategoryID = &v
		}
	}
	if raw := c.Query("purchased"); raw != "" {
		switch raw {
		case "true", "false":
			v := raw == "true"
			q.Purchased = &v
		default:
			errs = append(errs, dto.FieldError{Field: "purchased", Message: "purchased debe ser true o false"})
		}
	}
	if raw := c.Query("search"); raw != "" {
		if len(raw) > 100 {
			errs = append(errs, dto.FieldError{Field: "search", Message: "search debe tener como máximo 100 caracteres"})
		} else {
			q.Search = raw
		}
	}
	return q, errs
}
