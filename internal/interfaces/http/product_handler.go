package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-planner/internal/application/catalog"
	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
	"github.com/tu-usuario/stock-planner/internal/domain"
)

// ProductHandler maneja el CRUD de SKUs y sus consultas con métricas.
type ProductHandler struct {
	catalogUC  *catalog.UseCase
	planningUC *planning.UseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(catalogUC *catalog.UseCase, planningUC *planning.UseCase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, planningUC: planningUC}
}

// Upsert godoc
// @Summary      Crear o actualizar un SKU con sus ventas mensuales
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertProductRequest  true  "producto + ventas"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
// @Security     BearerAuth
func (h *ProductHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.catalogUC.UpsertWithSales(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar los SKUs del usuario con métricas calculadas
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.SKUPlanResponse
// @Router       /api/products [get]
// @Security     BearerAuth
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.planningUC.ListWithMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Detail godoc
// @Summary      Detalle de un SKU: plan + histórico de 6 meses
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
// @Security     BearerAuth
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	userID := GetUserID(c)
	sku := catalog.NormalizeSKU(c.Params("sku"))

	plan, err := h.planningUC.ComputeForSKU(c.UserContext(), userID, sku)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if plan == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sku no encontrado"})
	}
	history, err := h.planningUC.SalesHistory(c.UserContext(), userID, sku)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProductDetailResponse{SKUPlanResponse: *plan, History: history})
}

// Delete godoc
// @Summary      Eliminar un SKU y todas sus ventas
// @Tags         products
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [delete]
// @Security     BearerAuth
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	err := h.catalogUC.Delete(c.UserContext(), GetUserID(c), c.Params("sku"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sku no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMonthlySale godoc
// @Summary      Eliminar un hecho de ventas mensual
// @Tags         products
// @Produce      json
// @Param        sku    path  string  true  "SKU"
// @Param        year   path  int     true  "año"
// @Param        month  path  int     true  "mes (1-12)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{sku}/sales/{year}/{month} [delete]
// @Security     BearerAuth
func (h *ProductHandler) DeleteMonthlySale(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	if err := h.catalogUC.DeleteMonthlySale(c.UserContext(), GetUserID(c), c.Params("sku"), year, month); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
