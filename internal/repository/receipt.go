package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/gen/ent"
	receiptent "github.com/receiptiq/receiptiq/gen/ent/receipt"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// ErrorMessageLimit bounds persisted failure messages (column width).
const ErrorMessageLimit = 500

type CreateReceiptRequest struct {
	ProjectID uuid.UUID
	FilePath  string
	FileName  string
	MimeType  string
}

type ReceiptRepository interface {
	Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// SetStatus persists a lifecycle transition, clearing any error message.
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus) error
	// SetFailed persists the failed status with a truncated error message.
	SetFailed(ctx context.Context, id uuid.UUID, message string) error
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{client: client, logger: logger}
}

func (r *receiptRepository) Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Create().
		SetProjectID(req.ProjectID).
		SetFilePath(req.FilePath).
		SetFileName(req.FileName).
		SetMimeType(req.MimeType).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create receipt", "project_id", req.ProjectID, "file", req.FileName, "error", err)
		return nil, err
	}
	return toReceipt(rec), nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReceipt(rec), nil
}

func (r *receiptRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Receipt, error) {
	recs, err := r.client.Receipt.Query().
		Where(receiptent.ProjectID(projectID)).
		Order(receiptent.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		out[i] = toReceipt(rec)
	}
	return out, nil
}

// Delete removes the receipt; data values cascade.
func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Receipt.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete receipt", "receipt_id", id, "error", err)
		return err
	}
	return nil
}

func (r *receiptRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus) error {
	err := r.client.Receipt.UpdateOneID(id).
		SetStatus(string(status)).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set receipt status", "receipt_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("receipt status updated", "receipt_id", id, "status", status)
	return nil
}

func (r *receiptRepository) SetFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Receipt.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(Truncate(message, ErrorMessageLimit)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark receipt failed", "receipt_id", id, "error", err)
		return err
	}
	r.logger.Warn("receipt failed", "receipt_id", id, "message", message)
	return nil
}

// Truncate caps s at max bytes.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
