package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

// UserHandler administración de usuarios (solo administradores).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por username, nombre o email"
// @Param        limit   query  int     false  "Límite"   default(10)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.UserListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetActor(c), c.Query("search"), limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ToggleActivo godoc
// @Summary      Activar/desactivar usuario
// @Description  Invierte el flag activo. La autodesactivación siempre se rechaza.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/toggle-activo [post]
func (h *UserHandler) ToggleActivo(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActivo(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
