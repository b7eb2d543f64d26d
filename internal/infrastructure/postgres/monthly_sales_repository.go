package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/internal/domain/repository"
)

var _ repository.MonthlySalesRepository = (*MonthlySalesRepo)(nil)

// MonthlySalesRepo implementación del puerto MonthlySalesRepository sobre
// PostgreSQL (usable con pool o tx).
type MonthlySalesRepo struct {
	q Querier
}

// NewMonthlySalesRepository construye el adaptador de persistencia para
// ventas mensuales. Pasar pool o tx (Querier).
func NewMonthlySalesRepository(q Querier) *MonthlySalesRepo {
	return &MonthlySalesRepo{q: q}
}

// UpsertBatch inserta cada hecho o, si (user_id, sku, year, month) ya existe,
// actualiza units_sold en la fila existente.
func (r *MonthlySalesRepo) UpsertBatch(ctx context.Context, sales []*entity.MonthlySale) error {
	query := `
		INSERT INTO monthly_sales (id, user_id, sku, year, month, units_sold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, sku, year, month) DO UPDATE SET
			units_sold = EXCLUDED.units_sold`
	for _, s := range sales {
		_, err := r.q.Exec(ctx, query,
			s.ID, s.UserID, s.SKU, s.Year, s.Month, s.UnitsSold, s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert monthly sale %04d-%02d: %w", s.Year, s.Month, err)
		}
	}
	return nil
}

// FindUnits devuelve las unidades vendidas del mes, o (nil, nil) si no hay
// hecho registrado.
func (r *MonthlySalesRepo) FindUnits(ctx context.Context, userID, sku string, year, month int) (*int, error) {
	query := `
		SELECT units_sold FROM monthly_sales
		WHERE user_id = $1 AND sku = $2 AND year = $3 AND month = $4`
	var units int
	err := r.q.QueryRow(ctx, query, userID, sku, year, month).Scan(&units)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get monthly sale: %w", err)
	}
	return &units, nil
}

// DeleteOne elimina exactamente un hecho si existe; no-op si no.
func (r *MonthlySalesRepo) DeleteOne(ctx context.Context, userID, sku string, year, month int) error {
	query := `
		DELETE FROM monthly_sales
		WHERE user_id = $1 AND sku = $2 AND year = $3 AND month = $4`
	if _, err := r.q.Exec(ctx, query, userID, sku, year, month); err != nil {
		return fmt.Errorf("delete monthly sale: %w", err)
	}
	return nil
}

// DeleteBySKU elimina todos los hechos del SKU del usuario.
func (r *MonthlySalesRepo) DeleteBySKU(ctx context.Context, userID, sku string) error {
	query := `DELETE FROM monthly_sales WHERE user_id = $1 AND sku = $2`
	if _, err := r.q.Exec(ctx, query, userID, sku); err != nil {
		return fmt.Errorf("delete monthly sales by sku: %w", err)
	}
	return nil
}
