package entity

import "time"

// Estados de una tarea.
const (
	TaskStatusPending = "pending"
	TaskStatusDone    = "done"
)

// Task representa una tarea pendiente del taller (reparaciones, encargos, recordatorios).
type Task struct {
	ID          string
	Description string
	Status      string
	DueDate     *time.Time // nil si no tiene fecha límite
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
