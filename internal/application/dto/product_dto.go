package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySaleInput un hecho de ventas dentro del formulario de upsert.
type MonthlySaleInput struct {
	Year      int `json:"year"`
	Month     int `json:"month"`
	UnitsSold int `json:"units_sold"`
}

// UpsertProductRequest alta o edición de un SKU junto con sus ventas
// mensuales. El producto y el lote de ventas se aplican en una sola
// transacción.
type UpsertProductRequest struct {
	SKU          string             `json:"sku"`
	Name         string             `json:"name"`
	LeadTimeDays int                `json:"lead_time_days"`
	ZValue       decimal.Decimal    `json:"z_value"`
	FBAStock     int                `json:"fba_stock"`
	InboundStock int                `json:"inbound_stock"`
	Sales        []MonthlySaleInput `json:"sales"`
}

// ProductResponse representación de un SKU.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	LeadTimeDays int             `json:"lead_time_days"`
	ZValue       decimal.Decimal `json:"z_value"`
	FBAStock     int             `json:"fba_stock"`
	InboundStock int             `json:"inbound_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
