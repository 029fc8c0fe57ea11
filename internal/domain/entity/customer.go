package entity

import "time"

// Customer representa un cliente de la joyería.
// FirstSaleDate se fija exactamente una vez: al registrar la primera venta del cliente.
type Customer struct {
	ID            string
	Name          string
	TIN           string // NIT o cédula, único
	Email         string
	Phone         string
	FirstSaleDate *time.Time // nil hasta la primera venta
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
