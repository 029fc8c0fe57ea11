package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// TaskUseCase casos de uso para tareas del taller.
type TaskUseCase struct {
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

// Create registra una tarea en estado pendiente.
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	var due *time.Time
	if in.DueDate != "" {
		d, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		due = &d
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Description: in.Description,
		Status:      entity.TaskStatusPending,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Update actualiza descripción, estado o fecha límite de una tarea.
func (uc *TaskUseCase) Update(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		if *in.Status != entity.TaskStatusPending && *in.Status != entity.TaskStatusDone {
			return nil, domain.ErrInvalidInput
		}
		task.Status = *in.Status
	}
	if in.DueDate != nil {
		if *in.DueDate == "" {
			task.DueDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *in.DueDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			task.DueDate = &d
		}
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// List lista tareas, opcionalmente filtradas por estado.
func (uc *TaskUseCase) List(status string, limit, offset int) ([]dto.TaskResponse, error) {
	if status != "" && status != entity.TaskStatusPending && status != entity.TaskStatusDone {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

// Delete elimina una tarea por ID.
func (uc *TaskUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	resp := &dto.TaskResponse{
		ID:          t.ID,
		Description: t.Description,
		Status:      t.Status,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format("2006-01-02")
	}
	return resp
}
