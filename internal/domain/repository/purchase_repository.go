package repository

import (
	"time"

	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras y sus líneas.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	CreateLine(line *entity.PurchaseMaterial) error
	GetByID(id string) (*entity.Purchase, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Purchase, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Purchase, error)
	Delete(id string) error
}

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(from, to *time.Time, category string, limit, offset int) ([]*entity.Expense, error)
	Update(e *entity.Expense) error
	Delete(id string) error
}

// TaskRepository puerto de persistencia para tareas del taller.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	List(status string, limit, offset int) ([]*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) error
	CountPending() (int, error)
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
