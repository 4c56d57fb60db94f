package project

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"omitempty"`
	Status      string `json:"status" binding:"omitempty,oneof=ACTIVE ARCHIVED COMPLETED"`
	StartDate   string `json:"start_date" binding:"omitempty"`
	EndDate     string `json:"end_date" binding:"omitempty"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"omitempty"`
	Status      string `json:"status" binding:"required,oneof=ACTIVE ARCHIVED COMPLETED"`
	StartDate   string `json:"start_date" binding:"omitempty"`
	EndDate     string `json:"end_date" binding:"omitempty"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}
