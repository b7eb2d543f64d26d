package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/domain"
	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/internal/domain/repository"
	"github.com/tu-usuario/stock-planner/pkg/password"
	"github.com/tu-usuario/stock-planner/pkg/session"
)

// minPasswordLen largo mínimo de contraseña en el registro.
const minPasswordLen = 8

// emailFolder case folding Unicode para que la unicidad de email sea
// realmente case-insensitive (no solo ASCII).
var emailFolder = cases.Fold()

// UseCase casos de uso de autenticación: registro y login con emisión de
// token de sesión firmado.
type UseCase struct {
	users      repository.UserRepository
	sessions   *session.Manager
	bcryptCost int
}

// NewUseCase construye el caso de uso de auth. bcryptCost <= 0 usa el costo
// por defecto de bcrypt.
func NewUseCase(users repository.UserRepository, sessions *session.Manager, bcryptCost int) *UseCase {
	return &UseCase{users: users, sessions: sessions, bcryptCost: bcryptCost}
}

// NormalizeEmail recorta espacios y aplica case folding. Toda lectura y
// escritura de emails pasa por aquí.
func NormalizeEmail(email string) string {
	return emailFolder.String(strings.TrimSpace(email))
}

// Register crea un usuario: valida las reglas del formulario, hashea la
// contraseña y persiste. Devuelve ErrEmailAlreadyExists si el email
// normalizado ya existe, y el token de sesión del usuario recién creado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}
	if in.Password != in.PasswordConfirm {
		return nil, domain.ErrPasswordMismatch
	}
	email := NormalizeEmail(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := password.Hash(in.Password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.sessions.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// Login verifica email/contraseña y genera el token de sesión. Email
// desconocido y contraseña incorrecta son indistinguibles para el caller
// (ambos devuelven ErrInvalidCredentials) para no permitir enumerar cuentas.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.sessions.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
