// Package catalog implementa el CRUD user-scoped de SKUs y ventas mensuales.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/domain"
	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/internal/domain/repository"
)

// UseCase casos de uso de catálogo: upsert transaccional de producto+ventas,
// consulta y borrados. Toda operación recibe el userID ya autenticado; jamás
// uno afirmado por el cliente.
type UseCase struct {
	tx       TxRunner
	products repository.ProductRepository
	sales    repository.MonthlySalesRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, products repository.ProductRepository, sales repository.MonthlySalesRepository) *UseCase {
	return &UseCase{tx: tx, products: products, sales: sales}
}

// NormalizeSKU recorta espacios y pasa a mayúsculas. El data store espera el
// SKU ya normalizado.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// UpsertWithSales inserta o actualiza el producto con clave (userID, sku) y
// aplica el lote de ventas mensuales en la misma transacción. Una aplicación
// parcial (producto sí, ventas no, o al revés) sería una falla de
// consistencia, por eso todo va dentro del TxRunner.
func (uc *UseCase) UpsertWithSales(ctx context.Context, userID string, in dto.UpsertProductRequest) (*dto.ProductResponse, error) {
	sku := NormalizeSKU(in.SKU)
	if err := validateProduct(sku, in); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(), // ignorado si la fila ya existe
		UserID:       userID,
		SKU:          sku,
		Name:         strings.TrimSpace(in.Name),
		LeadTimeDays: in.LeadTimeDays,
		ZValue:       in.ZValue,
		FBAStock:     in.FBAStock,
		InboundStock: in.InboundStock,
		UpdatedAt:    now,
	}

	batch := make([]*entity.MonthlySale, 0, len(in.Sales))
	for _, s := range in.Sales {
		batch = append(batch, &entity.MonthlySale{
			ID:        uuid.New().String(),
			UserID:    userID,
			SKU:       sku,
			Year:      s.Year,
			Month:     s.Month,
			UnitsSold: s.UnitsSold,
			CreatedAt: now,
		})
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.MonthlySalesRepository) error {
		if err := products.Upsert(ctx, product); err != nil {
			return err
		}
		return sales.UpsertBatch(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	// Releer la fila canónica: en una actualización el id original se conserva.
	stored, err := uc.products.FindBySKU(ctx, userID, sku)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("upsert product %s: fila no encontrada tras commit", sku)
	}
	return ToProductResponse(stored), nil
}

// Get devuelve el producto del usuario, o (nil, nil) si no existe.
func (uc *UseCase) Get(ctx context.Context, userID, sku string) (*dto.ProductResponse, error) {
	product, err := uc.products.FindBySKU(ctx, userID, NormalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Delete elimina el producto y, en cascada, todos sus hechos de ventas,
// dentro de una transacción (ventas primero por consistencia referencial).
// Devuelve ErrNotFound si el usuario no tiene ese SKU.
func (uc *UseCase) Delete(ctx context.Context, userID, sku string) error {
	sku = NormalizeSKU(sku)
	product, err := uc.products.FindBySKU(ctx, userID, sku)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.MonthlySalesRepository) error {
		if err := sales.DeleteBySKU(ctx, userID, sku); err != nil {
			return err
		}
		return products.Delete(ctx, userID, sku)
	})
}

// DeleteMonthlySale elimina exactamente un hecho de ventas si existe; si no,
// es un no-op sin error.
func (uc *UseCase) DeleteMonthlySale(ctx context.Context, userID, sku string, year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: mes %d fuera de rango", domain.ErrInvalidInput, month)
	}
	return uc.sales.DeleteOne(ctx, userID, NormalizeSKU(sku), year, month)
}

func validateProduct(sku string, in dto.UpsertProductRequest) error {
	if sku == "" {
		return fmt.Errorf("%w: sku vacío", domain.ErrInvalidInput)
	}
	if in.LeadTimeDays <= 0 {
		return fmt.Errorf("%w: lead_time_days debe ser positivo", domain.ErrInvalidInput)
	}
	if in.ZValue.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: z_value no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.FBAStock < 0 || in.InboundStock < 0 {
		return fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	for _, s := range in.Sales {
		if s.Month < 1 || s.Month > 12 {
			return fmt.Errorf("%w: mes %d fuera de rango", domain.ErrInvalidInput, s.Month)
		}
		if s.UnitsSold < 0 {
			return fmt.Errorf("%w: units_sold no puede ser negativo", domain.ErrInvalidInput)
		}
	}
	return nil
}

// ToProductResponse convierte la entidad al DTO público.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		LeadTimeDays: p.LeadTimeDays,
		ZValue:       p.ZValue,
		FBAStock:     p.FBAStock,
		InboundStock: p.InboundStock,
		UpdatedAt:    p.UpdatedAt,
	}
}
