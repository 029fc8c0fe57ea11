package entity

import "time"

// Category representa una categoría de productos (anillos, cadenas, aretes...).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location punto de venta o taller donde se registran ventas.
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
