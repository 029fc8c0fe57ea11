package dto

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD
}

// UpdateTaskRequest body para PUT /api/tasks/:id.
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"` // pending | done
	DueDate     *string `json:"due_date,omitempty"`
}

// TaskResponse tarea en respuestas.
type TaskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
}
