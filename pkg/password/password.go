// Package password encapsula el hashing de contraseñas con bcrypt.
//
// bcrypt solo considera los primeros 72 bytes de la entrada; se truncan de
// forma explícita tanto al hashear como al verificar para que ambos lados
// apliquen exactamente el mismo recorte.
package password

import "golang.org/x/crypto/bcrypt"

// bcryptInputLimit límite de entrada del algoritmo bcrypt.
const bcryptInputLimit = 72

// Hash genera un hash bcrypt con salt fresco. cost <= 0 usa el costo por defecto.
// Dos llamadas con la misma contraseña producen hashes distintos (salt aleatorio).
func Hash(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(truncate(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara la contraseña contra el hash almacenado (comparación de
// tiempo constante dentro de bcrypt). Devuelve false ante cualquier fallo.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptInputLimit {
		b = b[:bcryptInputLimit]
	}
	return b
}
