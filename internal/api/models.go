package api

// Common request structures. Each operation has an explicit schema; unknown
// fields are rejected during decoding.

// CreateTaskRequest defines the payload for the create-task endpoint.
type CreateTaskRequest struct {
	Name        *string `json:"task_name"`
	Title       string  `json:"task_title"       validate:"required"`
	Description *string `json:"task_description"`
}

// EditTaskRequest defines the payload for the edit-task endpoint.
type EditTaskRequest struct {
	ID          int64   `json:"task_id"          validate:"required"`
	Name        *string `json:"task_name"`
	Title       string  `json:"task_title"       validate:"required"`
	Description *string `json:"task_description"`
}

// DeleteTaskRequest defines the payload for the delete-task endpoint.
type DeleteTaskRequest struct {
	ID int64 `json:"task_id" validate:"required"`
}
