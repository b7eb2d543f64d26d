package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-planner/pkg/session"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "stock-planner-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
	maxAge     = 30 * 24 * time.Hour
)

// Round-trip: un token recién emitido debe decodificar al mismo userID.
func TestSession_RoundTrip(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)

	tok, err := m.Issue(testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	uid, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, uid)
}

func TestSession_IssueSinUserID_RetornaError(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)
	_, err := m.Issue("")
	assert.Error(t, err)
}

// Un secret distinto debe invalidar la firma.
func TestSession_SecretIncorrecto_RetornaError(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)
	otro := session.New("otro-secret-completamente-distinto", testIssuer, maxAge)

	tok, err := m.Issue(testUserID)
	require.NoError(t, err)

	_, err = otro.Parse(tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestSession_TokenMalformado_RetornaError(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)

	for _, tok := range []string{"", "no-es-un-jwt", "aaa.bbb.ccc"} {
		_, err := m.Parse(tok)
		assert.Error(t, err, "token %q debe ser inválido", tok)
	}
}

// Un token cuyo iat supera la vida máxima es inválido aunque la firma sea
// correcta y exp apunte al futuro.
func TestSession_IssuedAtViejo_RetornaError(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)

	issued := time.Now().Add(-31 * 24 * time.Hour)
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)), // exp manipulado
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.Error(t, err, "token emitido hace 31 días debe estar expirado")
}

// Un token firmado sin subject no identifica a nadie.
func TestSession_SinSubject_RetornaError(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.Error(t, err)
}

// CurrentUserID degrada a "" ante cualquier token inválido, sin error.
func TestSession_CurrentUserID_DegradaAAnonimo(t *testing.T) {
	m := session.New(testSecret, testIssuer, maxAge)

	tok, err := m.Issue(testUserID)
	require.NoError(t, err)

	assert.Equal(t, testUserID, m.CurrentUserID(tok))
	assert.Equal(t, "", m.CurrentUserID(""))
	assert.Equal(t, "", m.CurrentUserID("basura"))

	otro := session.New("otro-secret", testIssuer, maxAge)
	assert.Equal(t, "", otro.CurrentUserID(tok))
}
