package employee

import (
	"hr-backoffice/internal/contract"
	"hr-backoffice/internal/document"
)

type CreateEmployeeRequest struct {
	Name             string `json:"name" binding:"required"`
	CPF              string `json:"cpf" binding:"required"`
	RegistrationCode string `json:"registration_code" binding:"required"`
	Status           string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE ON_LEAVE"`
}

type UpdateEmployeeRequest struct {
	Name             string `json:"name" binding:"required"`
	RegistrationCode string `json:"registration_code" binding:"required"`
	Status           string `json:"status" binding:"required,oneof=ACTIVE INACTIVE ON_LEAVE"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	Name             string                      `json:"name"`
	CPF              string                      `json:"cpf"`
	RegistrationCode string                      `json:"registration_code"`
	Status           string                      `json:"status"`
	Contracts        []contract.ContractResponse `json:"contracts,omitempty"`
	Documents        []document.DocumentResponse `json:"documents,omitempty"`
}
