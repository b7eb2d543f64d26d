package entity

import "time"

// MonthlySale es un hecho de ventas: unidades vendidas de un SKU en un mes
// calendario. Único por (UserID, SKU, Year, Month); una repetición actualiza
// UnitsSold en la fila existente.
type MonthlySale struct {
	ID        string
	UserID    string
	SKU       string
	Year      int
	Month     int // 1–12
	UnitsSold int // >= 0
	CreatedAt time.Time
}
