package catalog

import (
	"context"

	"github.com/tu-usuario/stock-planner/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción: el upsert de
// producto y su lote de ventas (o el borrado en cascada) se aplican como una
// unidad atómica o no se aplican.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.MonthlySalesRepository,
	) error) error
}
