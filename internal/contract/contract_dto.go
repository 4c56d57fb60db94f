package contract

type CreateContractRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Type       string `json:"type" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"omitempty"`
	Status     string `json:"status" binding:"omitempty,oneof=ACTIVE TERMINATED EXPIRED"`
}

type UpdateContractRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"omitempty"`
	Status    string `json:"status" binding:"required,oneof=ACTIVE TERMINATED EXPIRED"`
}

type ContractResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date,omitempty"`
	Status     string `json:"status"`
}
