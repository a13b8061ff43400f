package entity

import "time"

// Client representa un cliente al que se le emiten facturas.
type Client struct {
	ID        string
	OwnerID   string // usuario dueño del registro
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
}
