package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
)

// PlanningHandler expone el plan de pedidos agregado.
type PlanningHandler struct {
	uc *planning.UseCase
}

// NewPlanningHandler construye el handler del plan.
func NewPlanningHandler(uc *planning.UseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// OrderPlan godoc
// @Summary      Plan de pedidos: SKUs con cantidad sugerida mayor que cero
// @Tags         planning
// @Produce      json
// @Success      200  {array}  dto.SKUPlanResponse
// @Router       /api/plan [get]
// @Security     BearerAuth
func (h *PlanningHandler) OrderPlan(c *fiber.Ctx) error {
	plan, err := h.uc.OrderPlan(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(plan)
}
