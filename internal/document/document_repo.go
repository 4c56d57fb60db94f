package document

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *Document) error
	FindAll(ctx context.Context) ([]Document, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Document, error)
	Update(ctx context.Context, doc *Document) error
	UpdateOCR(ctx context.Context, id uuid.UUID, status string, ocr json.RawMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create goes through the caller's transaction when one is attached so the
// document row commits together with its outbox event.
func (r *repository) Create(ctx context.Context, doc *Document) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(doc).Error
	}

	const query = `
INSERT INTO documents (id, name, type, status, employee_id, upload_id, ocr_data)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	var ocr any
	if len(doc.OCRData) > 0 {
		ocr = []byte(doc.OCRData)
	}
	_, err := r.tx.ExecContext(
		ctx, query,
		doc.ID, doc.Name, doc.Type, doc.Status, doc.EmployeeID, doc.UploadID, ocr,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Preload("Upload").
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	var doc Document
	err := r.db.WithContext(ctx).
		Preload("Upload").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Preload("Upload").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) Update(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

func (r *repository) UpdateOCR(ctx context.Context, id uuid.UUID, status string, ocr json.RawMessage) error {
	updates := map[string]any{"status": status}
	if len(ocr) > 0 {
		updates["ocr_data"] = []byte(ocr)
	}
	return r.db.WithContext(ctx).
		Model(&Document{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Document{}, "id = ?", id).Error
}
