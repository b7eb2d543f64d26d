package entity

import "time"

// User es el ancla de identidad: todo Product y MonthlySale pertenece a un
// usuario. Email se guarda ya normalizado (trim + case folding).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
