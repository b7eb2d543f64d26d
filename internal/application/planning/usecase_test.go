package planning

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-planner/internal/domain"
	"github.com/tu-usuario/stock-planner/internal/domain/entity"
)

// Test interno al paquete para poder fijar el reloj del caso de uso.

type stubProducts struct {
	rows map[string]*entity.Product // clave "userID/sku"
}

func (s *stubProducts) Upsert(context.Context, *entity.Product) error { return nil }

func (s *stubProducts) FindBySKU(_ context.Context, userID, sku string) (*entity.Product, error) {
	if p, ok := s.rows[userID+"/"+sku]; ok {
		return p, nil
	}
	return nil, nil
}

func (s *stubProducts) ListByUser(_ context.Context, userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProducts) Delete(context.Context, string, string) error { return nil }

type stubSales struct {
	units map[string]int // clave "userID/sku/año/mes"
}

func salesKey(userID, sku string, year, month int) string {
	return userID + "/" + sku + "/" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (s *stubSales) UpsertBatch(context.Context, []*entity.MonthlySale) error { return nil }

func (s *stubSales) FindUnits(_ context.Context, userID, sku string, year, month int) (*int, error) {
	if u, ok := s.units[salesKey(userID, sku, year, month)]; ok {
		v := u
		return &v, nil
	}
	return nil, nil
}

func (s *stubSales) DeleteOne(context.Context, string, string, int, int) error { return nil }
func (s *stubSales) DeleteBySKU(context.Context, string, string) error         { return nil }

func testProduct(userID, sku string, fba int) *entity.Product {
	return &entity.Product{
		ID:           "prod-" + sku,
		UserID:       userID,
		SKU:          sku,
		Name:         "Test",
		LeadTimeDays: 7,
		ZValue:       decimal.RequireFromString("1.65"),
		FBAStock:     fba,
		InboundStock: 0,
		UpdatedAt:    time.Now(),
	}
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

// La ventana cubre los 3 meses más recientes y omite (no rellena con cero)
// los meses sin hecho de ventas. Aquí falta el mes actual: el motor recibe
// solo 2 puntos.
func TestComputeForSKU_OmiteMesesSinDatos(t *testing.T) {
	products := &stubProducts{rows: map[string]*entity.Product{
		"user-1/WIDGET-A": testProduct("user-1", "WIDGET-A", 50),
	}}
	sales := &stubSales{units: map[string]int{
		salesKey("user-1", "WIDGET-A", 2025, 12): 120,
		salesKey("user-1", "WIDGET-A", 2025, 11): 100,
	}}
	uc := &UseCase{products: products, sales: sales, now: fixedClock(2026, time.January)}

	out, err := uc.ComputeForSKU(context.Background(), "user-1", "WIDGET-A")
	require.NoError(t, err)
	require.NotNil(t, out)

	// Ventana: 2026-01 (sin dato), 2025-12, 2025-11, más reciente primero.
	require.Len(t, out.Window, 3)
	assert.Equal(t, "2026-01", out.Window[0].Label)
	assert.Nil(t, out.Window[0].Units, "mes sin hecho registrado debe quedar en nil, no en cero")
	assert.Equal(t, "2025-12", out.Window[1].Label)
	require.NotNil(t, out.Window[1].Units)
	assert.Equal(t, 120, *out.Window[1].Units)
	assert.Equal(t, "2025-11", out.Window[2].Label)

	// El motor vio [120, 100]: media 110, stdev muestral sqrt(200).
	assert.InDelta(t, 110.0/30.0, out.Metrics.DailyVelocity, 1e-9)
	assert.InDelta(t, 14.142135623730951/30.0, out.Metrics.StdDaily, 1e-9)
}

func TestComputeForSKU_SinProducto_RetornaNil(t *testing.T) {
	uc := &UseCase{
		products: &stubProducts{rows: map[string]*entity.Product{}},
		sales:    &stubSales{units: map[string]int{}},
		now:      fixedClock(2026, time.August),
	}

	out, err := uc.ComputeForSKU(context.Background(), "user-1", "NO-EXISTE")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Sin ningún hecho en la ventana, todas las métricas valen 0.
func TestComputeForSKU_VentanaVacia_MetricasCero(t *testing.T) {
	products := &stubProducts{rows: map[string]*entity.Product{
		"user-1/WIDGET-A": testProduct("user-1", "WIDGET-A", 50),
	}}
	uc := &UseCase{products: products, sales: &stubSales{units: map[string]int{}}, now: fixedClock(2026, time.August)}

	out, err := uc.ComputeForSKU(context.Background(), "user-1", "WIDGET-A")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Zero(t, out.Metrics.DailyVelocity)
	assert.Zero(t, out.Metrics.ReorderPoint)
	assert.Zero(t, out.Metrics.OrderQty)
}

// El plan de pedidos solo incluye SKUs con cantidad sugerida redondeada > 0.
func TestOrderPlan_FiltraSinPedido(t *testing.T) {
	products := &stubProducts{rows: map[string]*entity.Product{
		"user-1/NECESITA": testProduct("user-1", "NECESITA", 10),
		"user-1/SOBRADO":  testProduct("user-1", "SOBRADO", 100000),
	}}
	sales := &stubSales{units: map[string]int{
		salesKey("user-1", "NECESITA", 2026, 8): 300,
		salesKey("user-1", "NECESITA", 2026, 7): 280,
		salesKey("user-1", "SOBRADO", 2026, 8):  300,
		salesKey("user-1", "SOBRADO", 2026, 7):  280,
	}}
	uc := &UseCase{products: products, sales: sales, now: fixedClock(2026, time.August)}

	plan, err := uc.OrderPlan(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, plan, 1)
	assert.Equal(t, "NECESITA", plan[0].Product.SKU)
}

// El histórico es ascendente, de largo fijo y rellena con 0 los meses sin
// dato (política inversa a la ventana de métricas, solo para graficar).
func TestSalesHistory_RellenaConCeroYCruzaAnio(t *testing.T) {
	products := &stubProducts{rows: map[string]*entity.Product{
		"user-1/WIDGET-A": testProduct("user-1", "WIDGET-A", 50),
	}}
	sales := &stubSales{units: map[string]int{
		salesKey("user-1", "WIDGET-A", 2026, 2):  40,
		salesKey("user-1", "WIDGET-A", 2025, 11): 25,
	}}
	uc := &UseCase{products: products, sales: sales, now: fixedClock(2026, time.February)}

	history, err := uc.SalesHistory(context.Background(), "user-1", "WIDGET-A")
	require.NoError(t, err)
	require.Len(t, history, 6)

	assert.Equal(t, "2025-09", history[0].Label)
	assert.Equal(t, "2026-02", history[5].Label)

	byLabel := map[string]int{}
	for _, h := range history {
		byLabel[h.Label] = h.Units
	}
	assert.Equal(t, 25, byLabel["2025-11"])
	assert.Equal(t, 40, byLabel["2026-02"])
	assert.Equal(t, 0, byLabel["2025-12"], "mes sin dato se grafica como 0")
}

func TestSalesHistory_SinProducto_RetornaNotFound(t *testing.T) {
	uc := &UseCase{
		products: &stubProducts{rows: map[string]*entity.Product{}},
		sales:    &stubSales{units: map[string]int{}},
		now:      fixedClock(2026, time.August),
	}
	_, err := uc.SalesHistory(context.Background(), "user-1", "NADA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoundedOrderQty(t *testing.T) {
	assert.Equal(t, 0, RoundedOrderQty(0))
	assert.Equal(t, 0, RoundedOrderQty(0.4))
	assert.Equal(t, 1, RoundedOrderQty(0.5))
	assert.Equal(t, 172, RoundedOrderQty(171.7))
}
