package entity

import "time"

// Procedure representa un paso de fabricación con nombre (baño de oro, engaste, pulido).
// El costo concreto se registra por producto en ProductProcedure.
type Procedure struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
