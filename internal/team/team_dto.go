package team

type CreateMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type UpdateMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type MemberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	EmployeeID string `json:"employee_id,omitempty"`
}
