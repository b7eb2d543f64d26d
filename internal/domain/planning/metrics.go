// Package planning contiene los servicios de dominio puros del cálculo de
// reposición: la ventana de meses calendario y las métricas de reorden.
package planning

import "math"

// orderCoverageDays horizonte fijo de cobertura del pedido sugerido.
const orderCoverageDays = 60

// Metrics son las cifras de reposición de un SKU. Valores crudos en float64:
// el redondeo para mostrar o exportar ocurre en el borde, nunca aquí.
type Metrics struct {
	DailyVelocity float64 // unidades/día, media mensual / 30
	StdDaily      float64 // desviación estándar muestral mensual / 30
	SafetyStock   float64
	ReorderPoint  float64
	OrderQty      float64 // unidades a pedir para 60 días; nunca negativa
}

// ComputeMetrics deriva las métricas de reorden a partir de la configuración
// del SKU y la secuencia de unidades vendidas por mes. Es una función pura y
// total: cada caso borde numérico tiene un valor definido en vez de un error.
//
//   - Secuencia vacía: todas las métricas en 0.
//   - Un solo dato: StdDaily = 0 (la desviación muestral usa divisor n-1 y
//     necesita al menos 2 puntos; este comportamiento es contractual).
//   - leadTimeDays <= 0: la raíz usa max(1, leadTime) para no colapsar el
//     stock de seguridad ni salir del dominio de sqrt.
func ComputeMetrics(leadTimeDays int, z float64, monthlyUnits []int, fbaStock, inboundStock int) Metrics {
	if len(monthlyUnits) == 0 {
		return Metrics{}
	}

	meanMonthly := mean(monthlyUnits)
	dailyVelocity := meanMonthly / 30.0

	stdDaily := 0.0
	if len(monthlyUnits) >= 2 {
		stdDaily = sampleStdDev(monthlyUnits, meanMonthly) / 30.0
	}

	safetyStock := z * stdDaily * math.Sqrt(float64(max(1, leadTimeDays)))
	reorderPoint := dailyVelocity*float64(leadTimeDays) + safetyStock
	orderQty := dailyVelocity*orderCoverageDays + safetyStock - float64(fbaStock+inboundStock)
	if orderQty < 0 {
		orderQty = 0
	}

	return Metrics{
		DailyVelocity: dailyVelocity,
		StdDaily:      stdDaily,
		SafetyStock:   safetyStock,
		ReorderPoint:  reorderPoint,
		OrderQty:      orderQty,
	}
}

func mean(units []int) float64 {
	sum := 0
	for _, u := range units {
		sum += u
	}
	return float64(sum) / float64(len(units))
}

// sampleStdDev desviación estándar muestral (divisor n-1, estimador insesgado).
func sampleStdDev(units []int, mean float64) float64 {
	var ss float64
	for _, u := range units {
		d := float64(u) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(units)-1))
}
