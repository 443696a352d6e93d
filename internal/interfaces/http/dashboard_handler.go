package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
)

// DashboardHandler expone los contadores de la pantalla principal.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Contadores del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
