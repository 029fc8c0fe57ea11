package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ProcedureUseCase casos de uso CRUD para procedimientos de fabricación.
type ProcedureUseCase struct {
	repo repository.ProcedureRepository
}

// NewProcedureUseCase construye el caso de uso.
func NewProcedureUseCase(repo repository.ProcedureRepository) *ProcedureUseCase {
	return &ProcedureUseCase{repo: repo}
}

// Create registra un procedimiento (baño de oro, engaste, pulido...).
func (uc *ProcedureUseCase) Create(in dto.CreateProcedureRequest) (*dto.ProcedureResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	procedure := &entity.Procedure{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(procedure); err != nil {
		return nil, err
	}
	return toProcedureResponse(procedure), nil
}

// GetByID obtiene un procedimiento por ID.
func (uc *ProcedureUseCase) GetByID(id string) (*dto.ProcedureResponse, error) {
	procedure, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProcedureResponse(procedure), nil
}

// Update renombra un procedimiento.
func (uc *ProcedureUseCase) Update(id, name string) (*dto.ProcedureResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	procedure, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, nil
	}
	procedure.Name = name
	procedure.UpdatedAt = time.Now()
	if err := uc.repo.Update(procedure); err != nil {
		return nil, err
	}
	return toProcedureResponse(procedure), nil
}

// List lista procedimientos con paginación.
func (uc *ProcedureUseCase) List(limit, offset int) ([]dto.ProcedureResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcedureResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProcedureResponse(p))
	}
	return out, nil
}

// Delete elimina un procedimiento por ID.
func (uc *ProcedureUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProcedureResponse(p *entity.Procedure) *dto.ProcedureResponse {
	if p == nil {
		return nil
	}
	return &dto.ProcedureResponse{ID: p.ID, Name: p.Name}
}
