package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/application/pedido"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// PedidoHandler maneja las peticiones HTTP del ciclo de vida de pedidos (protegido).
type PedidoHandler struct {
	uc *pedido.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedido.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "distribuidora_id y observaciones"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DistribuidoraID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "distribuidora_id es requerido"})
	}
	out, err := h.uc.Crear(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido con items y totales
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos (un vendedor solo ve los suyos)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        estado          query  string  false  "Filtrar por estado"
// @Param        distribuidora   query  string  false  "Filtrar por distribuidora (UUID)"
// @Param        limit           query  int     false  "Límite"   default(10)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PedidoListResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.PedidoFilter{
		Estado:          c.Query("estado"),
		DistribuidoraID: c.Query("distribuidora"),
	}
	out, err := h.uc.List(GetActor(c), filter, limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// AgregarItem godoc
// @Summary      Agregar item al pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.AgregarItemRequest  true  "producto_id, cantidad, precio_unitario"
// @Success      201   {object}  dto.ItemPedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/items [post]
func (h *PedidoHandler) AgregarItem(c *fiber.Ctx) error {
	var in dto.AgregarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	out, err := h.uc.AgregarItem(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EliminarItem godoc
// @Summary      Eliminar item del pedido
// @Tags         pedidos
// @Security     Bearer
// @Param        id      path  string  true  "ID del pedido"
// @Param        itemId  path  string  true  "ID del item"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/items/{itemId} [delete]
func (h *PedidoHandler) EliminarItem(c *fiber.Ctx) error {
	if err := h.uc.EliminarItem(c.Context(), GetActor(c), c.Params("id"), c.Params("itemId")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CambiarEstado godoc
// @Summary      Cambiar estado del pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [put]
func (h *PedidoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CambiarEstado(c.Context(), GetActor(c), c.Params("id"), in.Estado)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
