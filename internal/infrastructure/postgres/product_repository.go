package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta la fila o, si (user_id, sku) ya existe, actualiza la
// configuración conservando el id original.
func (r *ProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, sku, name, lead_time_days, z_value, fba_stock, inbound_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, sku) DO UPDATE SET
			name = EXCLUDED.name,
			lead_time_days = EXCLUDED.lead_time_days,
			z_value = EXCLUDED.z_value,
			fba_stock = EXCLUDED.fba_stock,
			inbound_stock = EXCLUDED.inbound_stock,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.UserID, product.SKU, product.Name,
		product.LeadTimeDays, product.ZValue, product.FBAStock, product.InboundStock,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// FindBySKU obtiene el producto del usuario, o (nil, nil) si no existe.
func (r *ProductRepo) FindBySKU(ctx context.Context, userID, sku string) (*entity.Product, error) {
	query := `
		SELECT id, user_id, sku, name, lead_time_days, z_value, fba_stock, inbound_stock, updated_at
		FROM products WHERE user_id = $1 AND sku = $2`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, userID, sku).Scan(
		&p.ID, &p.UserID, &p.SKU, &p.Name, &p.LeadTimeDays, &p.ZValue,
		&p.FBAStock, &p.InboundStock, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByUser lista los productos del usuario, más reciente primero.
func (r *ProductRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	query := `
		SELECT id, user_id, sku, name, lead_time_days, z_value, fba_stock, inbound_stock, updated_at
		FROM products WHERE user_id = $1 ORDER BY updated_at DESC, sku ASC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.SKU, &p.Name, &p.LeadTimeDays, &p.ZValue,
			&p.FBAStock, &p.InboundStock, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina la fila del producto del usuario. No toca monthly_sales; la
// cascada la coordina el caso de uso dentro de una transacción.
func (r *ProductRepo) Delete(ctx context.Context, userID, sku string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE user_id = $1 AND sku = $2`, userID, sku)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
