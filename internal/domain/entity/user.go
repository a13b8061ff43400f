package entity

import "time"

// User representa un usuario emisor de facturas (tenant de la aplicación).
// Cada cliente, factura e información bancaria pertenece a un único User.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
