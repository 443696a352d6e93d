package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

// DistribuidoraHandler maneja las peticiones HTTP para Distribuidora (protegido).
type DistribuidoraHandler struct {
	uc *usecase.DistribuidoraUseCase
}

// NewDistribuidoraHandler construye el handler.
func NewDistribuidoraHandler(uc *usecase.DistribuidoraUseCase) *DistribuidoraHandler {
	return &DistribuidoraHandler{uc: uc}
}

// Create godoc
// @Summary      Crear distribuidora
// @Tags         distribuidoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistribuidoraRequest  true  "Datos de la distribuidora"
// @Success      201   {object}  dto.DistribuidoraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distribuidoras [post]
func (h *DistribuidoraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistribuidoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo y nombre son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener distribuidora por ID
// @Tags         distribuidoras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la distribuidora"
// @Success      200  {object}  dto.DistribuidoraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribuidoras/{id} [get]
func (h *DistribuidoraHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(GetActor(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distribuidora no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar distribuidoras activas
// @Tags         distribuidoras
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre o código"
// @Param        limit   query  int     false  "Límite"   default(10)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.DistribuidoraListResponse
// @Router       /api/distribuidoras [get]
func (h *DistribuidoraHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetActor(c), c.Query("search"), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar distribuidora
// @Tags         distribuidoras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la distribuidora"
// @Param        body  body  dto.UpdateDistribuidoraRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DistribuidoraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distribuidoras/{id} [put]
func (h *DistribuidoraHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDistribuidoraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distribuidora no encontrada"})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar distribuidora (borrado suave)
// @Tags         distribuidoras
// @Security     Bearer
// @Param        id  path  string  true  "ID de la distribuidora"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribuidoras/{id}/deactivate [post]
func (h *DistribuidoraHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar distribuidora y sus pedidos (cascada)
// @Tags         distribuidoras
// @Security     Bearer
// @Param        id  path  string  true  "ID de la distribuidora"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribuidoras/{id} [delete]
func (h *DistribuidoraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams extrae limit/offset con los defaults del sistema (10 por página).
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
