package dto

// MetricsResponse métricas de reorden de un SKU. Valores crudos; el redondeo
// es cosa de cada export.
type MetricsResponse struct {
	DailyVelocity float64 `json:"daily_velocity"`
	StdDaily      float64 `json:"std_daily"`
	SafetyStock   float64 `json:"safety_stock"`
	ReorderPoint  float64 `json:"reorder_point"`
	OrderQty      float64 `json:"order_qty"`
}

// WindowMonth un mes de la ventana de cálculo. Units es nil cuando no hay
// hecho de ventas registrado para ese mes (ausente ≠ cero).
type WindowMonth struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
	Units *int   `json:"units"`
}

// SKUPlanResponse resultado de agregación por SKU: producto, ventana usada y
// métricas derivadas.
type SKUPlanResponse struct {
	Product ProductResponse `json:"product"`
	Window  []WindowMonth   `json:"window"`
	Metrics MetricsResponse `json:"metrics"`
}

// SalesHistoryEntry un mes del histórico de ventas (los meses sin hecho
// registrado aparecen con 0, solo para graficar).
type SalesHistoryEntry struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
	Units int    `json:"units"`
}

// ProductDetailResponse detalle completo de un SKU: plan + histórico.
type ProductDetailResponse struct {
	SKUPlanResponse
	History []SalesHistoryEntry `json:"history"`
}
