package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es la configuración de reposición de un SKU, propiedad de un único
// usuario. El par (UserID, SKU) es único: una segunda escritura con el mismo
// par actualiza la fila existente.
type Product struct {
	ID           string
	UserID       string
	SKU          string // normalizado por el caller: trim + mayúsculas
	Name         string // opcional
	LeadTimeDays int    // estrictamente positivo (validado aguas arriba)
	ZValue       decimal.Decimal
	FBAStock     int // stock disponible en el fulfillment center
	InboundStock int // stock en tránsito
	UpdatedAt    time.Time
}
