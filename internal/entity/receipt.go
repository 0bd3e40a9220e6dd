package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/constants"
)

// Receipt represents an uploaded document for data transfer between layers.
// FilePath is an opaque key into the object store, not a local path.
type Receipt struct {
	ID           uuid.UUID               `json:"id"`
	ProjectID    uuid.UUID               `json:"project_id"`
	FilePath     string                  `json:"file_path"`
	FileName     string                  `json:"file_name"`
	MimeType     string                  `json:"mime_type"`
	Status       constants.ReceiptStatus `json:"status"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
