// Package planning agrega configuración de SKU + historial de ventas y delega
// el cálculo de métricas al motor puro del dominio.
package planning

import (
	"context"
	"math"
	"time"

	"github.com/tu-usuario/stock-planner/internal/application/catalog"
	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/domain"
	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/internal/domain/planning"
	"github.com/tu-usuario/stock-planner/internal/domain/repository"
)

const (
	// windowMonths meses calendario que alimentan el motor de métricas.
	windowMonths = 3
	// historyMonths meses del histórico para graficar.
	historyMonths = 6
)

// UseCase resuelve la ventana de meses recientes, junta los hechos de ventas
// disponibles y delega en el motor de métricas.
type UseCase struct {
	products repository.ProductRepository
	sales    repository.MonthlySalesRepository
	now      func() time.Time
}

// NewUseCase construye el caso de uso con el reloj del sistema.
func NewUseCase(products repository.ProductRepository, sales repository.MonthlySalesRepository) *UseCase {
	return &UseCase{products: products, sales: sales, now: time.Now}
}

// ComputeForSKU devuelve producto + ventana + métricas, o (nil, nil) si el
// usuario no tiene ese SKU.
//
// Contrato de la ventana: se consultan los 3 meses calendario más recientes
// (el mes actual cuenta como mes 1) y los meses SIN hecho registrado se
// omiten de la secuencia: dato faltante no es cero ventas. El motor puede
// recibir menos de 3 puntos, lo que a su vez decide la rama de la desviación
// estándar muestral.
func (uc *UseCase) ComputeForSKU(ctx context.Context, userID, sku string) (*dto.SKUPlanResponse, error) {
	product, err := uc.products.FindBySKU(ctx, userID, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.planFor(ctx, userID, product)
}

// ListWithMetrics devuelve todos los SKUs del usuario (más reciente primero)
// con sus métricas calculadas.
func (uc *UseCase) ListWithMetrics(ctx context.Context, userID string) ([]dto.SKUPlanResponse, error) {
	products, err := uc.products.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUPlanResponse, 0, len(products))
	for _, p := range products {
		plan, err := uc.planFor(ctx, userID, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *plan)
	}
	return items, nil
}

// OrderPlan filtra la lista a los SKUs que requieren pedido: cantidad
// sugerida redondeada mayor que cero.
func (uc *UseCase) OrderPlan(ctx context.Context, userID string) ([]dto.SKUPlanResponse, error) {
	all, err := uc.ListWithMetrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan := make([]dto.SKUPlanResponse, 0, len(all))
	for _, item := range all {
		if RoundedOrderQty(item.Metrics.OrderQty) > 0 {
			plan = append(plan, item)
		}
	}
	return plan, nil
}

// SalesHistory devuelve los últimos 6 meses en orden cronológico ascendente,
// rellenando con 0 los meses sin hecho registrado. Este relleno existe solo
// para graficar: la ventana de métricas usa la política contraria.
func (uc *UseCase) SalesHistory(ctx context.Context, userID, sku string) ([]dto.SalesHistoryEntry, error) {
	product, err := uc.products.FindBySKU(ctx, userID, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	months := planning.LastCalendarMonths(uc.now(), historyMonths)
	history := make([]dto.SalesHistoryEntry, 0, len(months))
	// Recorrer de más viejo a más nuevo.
	for i := len(months) - 1; i >= 0; i-- {
		ym := months[i]
		units := 0
		if u, err := uc.sales.FindUnits(ctx, userID, sku, ym.Year, ym.Month); err != nil {
			return nil, err
		} else if u != nil {
			units = *u
		}
		history = append(history, dto.SalesHistoryEntry{
			Year:  ym.Year,
			Month: ym.Month,
			Label: ym.Label(),
			Units: units,
		})
	}
	return history, nil
}

func (uc *UseCase) planFor(ctx context.Context, userID string, product *entity.Product) (*dto.SKUPlanResponse, error) {
	months := planning.LastCalendarMonths(uc.now(), windowMonths)

	window := make([]dto.WindowMonth, 0, len(months))
	units := make([]int, 0, len(months))
	for _, ym := range months {
		u, err := uc.sales.FindUnits(ctx, userID, product.SKU, ym.Year, ym.Month)
		if err != nil {
			return nil, err
		}
		if u != nil {
			units = append(units, *u)
		}
		window = append(window, dto.WindowMonth{
			Year:  ym.Year,
			Month: ym.Month,
			Label: ym.Label(),
			Units: u,
		})
	}

	m := planning.ComputeMetrics(
		product.LeadTimeDays,
		product.ZValue.InexactFloat64(),
		units,
		product.FBAStock,
		product.InboundStock,
	)

	return &dto.SKUPlanResponse{
		Product: *catalog.ToProductResponse(product),
		Window:  window,
		Metrics: dto.MetricsResponse{
			DailyVelocity: m.DailyVelocity,
			StdDaily:      m.StdDaily,
			SafetyStock:   m.SafetyStock,
			ReorderPoint:  m.ReorderPoint,
			OrderQty:      m.OrderQty,
		},
	}, nil
}

// RoundedOrderQty redondea la cantidad sugerida a unidades enteras, como se
// muestra en listados y exports.
func RoundedOrderQty(orderQty float64) int {
	return int(math.Round(orderQty))
}
