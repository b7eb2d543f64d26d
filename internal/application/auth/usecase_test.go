package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-planner/internal/application/auth"
	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/domain"
	"github.com/tu-usuario/stock-planner/internal/domain/entity"
	"github.com/tu-usuario/stock-planner/pkg/session"
)

// memUsers repositorio en memoria con unicidad por email normalizado, como la
// restricción UNIQUE de la tabla.
type memUsers struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	return m.byID[id], nil
}

func newTestUseCase() (*auth.UseCase, *memUsers, *session.Manager) {
	users := newMemUsers()
	sessions := session.New("secreto-de-test", "stock-planner", 30*24*time.Hour)
	// Costo bcrypt mínimo para que los tests no tarden.
	return auth.NewUseCase(users, sessions, 4), users, sessions
}

func TestRegister_EmiteTokenValido(t *testing.T) {
	uc, _, sessions := newTestUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "  Ana@Ejemplo.COM ",
		Password:        "secreta123",
		PasswordConfirm: "secreta123",
	})
	require.NoError(t, err)

	// El email se guarda normalizado (trim + case folding).
	assert.Equal(t, "ana@ejemplo.com", out.User.Email)
	assert.NotEmpty(t, out.User.ID)

	// El token emitido resuelve al usuario recién creado.
	userID, err := sessions.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
}

func TestRegister_ContrasenaCorta(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ana@ejemplo.com",
		Password:        "corta12",
		PasswordConfirm: "corta12",
	})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestRegister_ConfirmacionNoCoincide(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ana@ejemplo.com",
		Password:        "secreta123",
		PasswordConfirm: "secreta124",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestRegister_EmailVacio(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "   ",
		Password:        "secreta123",
		PasswordConfirm: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Dos registros con el mismo email en distinta capitalización chocan contra
// la misma fila.
func TestRegister_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ana@ejemplo.com",
		Password:        "secreta123",
		PasswordConfirm: "secreta123",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ANA@EJEMPLO.COM",
		Password:        "otraclave456",
		PasswordConfirm: "otraclave456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _, sessions := newTestUseCase()

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ana@ejemplo.com",
		Password:        "secreta123",
		PasswordConfirm: "secreta123",
	})
	require.NoError(t, err)

	// El login acepta el email en cualquier capitalización.
	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "Ana@Ejemplo.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	userID, err := sessions.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, userID)
}

// Email inexistente y contraseña errónea devuelven el mismo error para no
// permitir enumerar cuentas.
func TestLogin_FallasIndistinguibles(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:           "ana@ejemplo.com",
		Password:        "secreta123",
		PasswordConfirm: "secreta123",
	})
	require.NoError(t, err)

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@ejemplo.com",
		Password: "secreta123",
	})
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@ejemplo.com",
		Password: "incorrecta999",
	})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@ejemplo.com", auth.NormalizeEmail("  Ana@Ejemplo.COM "))
	assert.Equal(t, "", auth.NormalizeEmail("   "))
}
