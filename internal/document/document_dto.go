package document

import "encoding/json"

type CreateDocumentRequest struct {
	Name       string          `json:"name" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	EmployeeID string          `json:"employee_id" binding:"omitempty,uuid"`
	UploadID   string          `json:"upload_id" binding:"required,uuid"`
	OCRData    json.RawMessage `json:"ocr_data" binding:"omitempty"`
}

type UpdateDocumentRequest struct {
	Name    string          `json:"name" binding:"required"`
	Type    string          `json:"type" binding:"required"`
	Status  string          `json:"status" binding:"required,oneof=PENDING PROCESSED FAILED"`
	OCRData json.RawMessage `json:"ocr_data" binding:"omitempty"`
}

type DocumentResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	EmployeeID string          `json:"employee_id,omitempty"`
	UploadID   string          `json:"upload_id"`
	UploadURL  string          `json:"upload_url,omitempty"`
	OCRData    json.RawMessage `json:"ocr_data,omitempty"`
}
