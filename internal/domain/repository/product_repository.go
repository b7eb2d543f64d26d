package repository

import (
	"context"

	"github.com/tu-usuario/stock-planner/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones filtran por userID: una fila nunca es visible ni
// mutable fuera de su dueño.
type ProductRepository interface {
	// Upsert inserta o actualiza la fila con clave (userID, sku).
	Upsert(ctx context.Context, product *entity.Product) error
	// FindBySKU devuelve (nil, nil) si el usuario no tiene ese SKU.
	FindBySKU(ctx context.Context, userID, sku string) (*entity.Product, error)
	// ListByUser devuelve los productos del usuario, más reciente primero.
	ListByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	// Delete elimina la fila del producto; no toca las ventas.
	Delete(ctx context.Context, userID, sku string) error
}
