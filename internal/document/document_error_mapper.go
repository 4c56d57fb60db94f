package document

import (
	"errors"

	documenterrors "hr-backoffice/internal/document/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenterrors.ErrDocumentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_document_upload_id" {
				return documenterrors.ErrUploadAlreadyLinked
			}
		case "23503":
			// FK violation means the upload or employee reference is bogus.
			return documenterrors.ErrUploadNotFound
		}
	}

	return err
}
