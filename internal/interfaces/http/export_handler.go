package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
	"github.com/tu-usuario/stock-planner/internal/infrastructure/export"
)

// ExportHandler sirve las descargas del catálogo y del plan de pedidos.
type ExportHandler struct {
	planningUC *planning.UseCase
	excel      *export.ExcelExporter
	pdf        *export.PDFExporter
	xml        *export.XMLExporter
}

// NewExportHandler construye el handler de exports.
func NewExportHandler(planningUC *planning.UseCase, excel *export.ExcelExporter, pdf *export.PDFExporter, xml *export.XMLExporter) *ExportHandler {
	return &ExportHandler{planningUC: planningUC, excel: excel, pdf: pdf, xml: xml}
}

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
	mimeXML  = "application/xml"
)

// ProductsXLSX godoc
// @Summary      Descargar el catálogo completo con métricas (xlsx)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/products.xlsx [get]
// @Security     BearerAuth
func (h *ExportHandler) ProductsXLSX(c *fiber.Ctx) error {
	items, err := h.planningUC.ListWithMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.excel.ProductsWorkbook(items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendFile(c, "productos.xlsx", mimeXLSX, data)
}

// PlanXLSX godoc
// @Summary      Descargar el plan de pedidos (xlsx)
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/plan.xlsx [get]
// @Security     BearerAuth
func (h *ExportHandler) PlanXLSX(c *fiber.Ctx) error {
	plan, err := h.planningUC.OrderPlan(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.excel.OrderPlanWorkbook(plan)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendFile(c, "plan-de-pedidos.xlsx", mimeXLSX, data)
}

// PlanPDF godoc
// @Summary      Descargar el plan de pedidos imprimible (pdf)
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/export/plan.pdf [get]
// @Security     BearerAuth
func (h *ExportHandler) PlanPDF(c *fiber.Ctx) error {
	plan, err := h.planningUC.OrderPlan(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.pdf.OrderPlanPDF(plan, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendFile(c, "plan-de-pedidos.pdf", mimePDF, data)
}

// ProductsXML godoc
// @Summary      Descargar el feed XML del catálogo con métricas
// @Tags         export
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/export/products.xml [get]
// @Security     BearerAuth
func (h *ExportHandler) ProductsXML(c *fiber.Ctx) error {
	items, err := h.planningUC.ListWithMetrics(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	data, err := h.xml.CatalogFeed(items, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return sendFile(c, "productos.xml", mimeXML, data)
}

func sendFile(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
