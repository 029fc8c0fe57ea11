package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

var _ repository.ProcedureRepository = (*ProcedureRepo)(nil)

// ProcedureRepo implementación de ProcedureRepository (usable con pool o tx).
type ProcedureRepo struct {
	q Querier
}

// NewProcedureRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProcedureRepository(q Querier) *ProcedureRepo {
	return &ProcedureRepo{q: q}
}

// Create persiste un procedimiento.
func (r *ProcedureRepo) Create(procedure *entity.Procedure) error {
	query := `INSERT INTO procedures (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		procedure.ID, procedure.Name, procedure.CreatedAt, procedure.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert procedure: %w", err)
	}
	return nil
}

// GetByID obtiene un procedimiento por ID.
func (r *ProcedureRepo) GetByID(id string) (*entity.Procedure, error) {
	var p entity.Procedure
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM procedures WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procedure: %w", err)
	}
	return &p, nil
}

// GetByIDs obtiene varios procedimientos de una vez, indexados por ID.
func (r *ProcedureRepo) GetByIDs(ids []string) (map[string]*entity.Procedure, error) {
	out := make(map[string]*entity.Procedure, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM procedures WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get procedures: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Procedure
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan procedure: %w", err)
		}
		out[p.ID] = &p
	}
	return out, rows.Err()
}

// List lista procedimientos con paginación.
func (r *ProcedureRepo) List(limit, offset int) ([]*entity.Procedure, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM procedures ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list procedures: %w", err)
	}
	defer rows.Close()
	var out []*entity.Procedure
	for rows.Next() {
		var p entity.Procedure
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan procedure: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update actualiza un procedimiento.
func (r *ProcedureRepo) Update(procedure *entity.Procedure) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE procedures SET name = $2, updated_at = $3 WHERE id = $1`,
		procedure.ID, procedure.Name, procedure.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update procedure: %w", err)
	}
	return nil
}

// Delete elimina un procedimiento por ID.
func (r *ProcedureRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM procedures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete procedure: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
