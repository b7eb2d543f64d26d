// Package session implementa los tokens de sesión firmados de la aplicación.
//
// Un token es un JWT HS256 cuyo subject es el id del usuario y cuyo claim
// iat fija el momento de emisión. La verificación rechaza cualquier token
// con firma inválida, payload malformado o emitido hace más de MaxAge.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager emite y verifica tokens de sesión con una clave HMAC del proceso.
type Manager struct {
	secret []byte
	maxAge time.Duration
	issuer string
	now    func() time.Time
}

// New construye el manager. maxAge es la vida máxima del token desde su emisión.
func New(secret, issuer string, maxAge time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		maxAge: maxAge,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue genera un token firmado para el usuario indicado.
func (m *Manager) Issue(userID string) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("session: secret vacío")
	}
	if userID == "" {
		return "", fmt.Errorf("session: userID vacío")
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida el token y devuelve el id de usuario embebido.
// Retorna error si la firma no corresponde, el payload está malformado o el
// claim iat es más viejo que MaxAge. La antigüedad se mide desde iat, no
// solo desde exp: un token con exp manipulado hacia el futuro sigue siendo
// inválido pasada la vida máxima.
func (m *Manager) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token sin subject")
	}
	if claims.IssuedAt == nil {
		return "", fmt.Errorf("token sin fecha de emisión")
	}
	if m.now().Sub(claims.IssuedAt.Time) > m.maxAge {
		return "", fmt.Errorf("sesión expirada")
	}
	return claims.Subject, nil
}

// CurrentUserID es la variante por ausencia de Parse: devuelve "" para
// cualquier token inválido, sin propagar el motivo. Pensada para rutas que
// degradan a estado anónimo en vez de fallar.
func (m *Manager) CurrentUserID(tokenString string) string {
	if tokenString == "" {
		return ""
	}
	userID, err := m.Parse(tokenString)
	if err != nil {
		return ""
	}
	return userID
}
