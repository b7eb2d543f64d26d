package repository

import (
	"context"

	"github.com/tu-usuario/stock-planner/internal/domain/entity"
)

// MonthlySalesRepository define el puerto de persistencia para MonthlySale.
type MonthlySalesRepository interface {
	// UpsertBatch inserta o actualiza cada hecho con clave
	// (userID, sku, year, month).
	UpsertBatch(ctx context.Context, sales []*entity.MonthlySale) error
	// FindUnits devuelve las unidades vendidas del mes, o (nil, nil) si no
	// hay hecho registrado. Un mes sin fila NO equivale a cero ventas.
	FindUnits(ctx context.Context, userID, sku string, year, month int) (*int, error)
	// DeleteOne elimina exactamente un hecho si existe; no-op si no.
	DeleteOne(ctx context.Context, userID, sku string, year, month int) error
	// DeleteBySKU elimina todos los hechos del SKU (cascada del producto).
	DeleteBySKU(ctx context.Context, userID, sku string) error
}
