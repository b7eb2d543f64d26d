package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-planner/internal/application/auth"
	"github.com/tu-usuario/stock-planner/internal/application/catalog"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
	"github.com/tu-usuario/stock-planner/internal/infrastructure/export"
	"github.com/tu-usuario/stock-planner/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CatalogUC  *catalog.UseCase
	PlanningUC *planning.UseCase
	Sessions   *session.Manager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer token de sesión)
	protected := api.Group("/", AuthMiddleware(deps.Sessions))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.PlanningUC)
	products.Post("/", productHandler.Upsert)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.Detail)
	products.Delete("/:sku", productHandler.Delete)
	products.Delete("/:sku/sales/:year/:month", productHandler.DeleteMonthlySale)

	// Plan de pedidos (protegido)
	planningHandler := NewPlanningHandler(deps.PlanningUC)
	protected.Get("/plan", planningHandler.OrderPlan)

	// Exports (protegido)
	exportHandler := NewExportHandler(deps.PlanningUC, export.NewExcelExporter(), export.NewPDFExporter(), export.NewXMLExporter())
	exports := protected.Group("/export")
	exports.Get("/products.xlsx", exportHandler.ProductsXLSX)
	exports.Get("/plan.xlsx", exportHandler.PlanXLSX)
	exports.Get("/plan.pdf", exportHandler.PlanPDF)
	exports.Get("/products.xml", exportHandler.ProductsXML)
}
