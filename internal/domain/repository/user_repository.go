package repository

import (
	"context"

	"github.com/tu-usuario/stock-planner/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// FindByEmail y FindByID devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
