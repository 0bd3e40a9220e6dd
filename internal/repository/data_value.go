package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/gen/ent"
	datavalueent "github.com/receiptiq/receiptiq/gen/ent/datavalue"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// ValueLimit bounds persisted scalar values (column width).
const ValueLimit = 300

type DataValueRepository interface {
	// Upsert writes the value keyed by (field, receipt, row): an existing
	// record for that triple is updated in place, otherwise one is created.
	Upsert(ctx context.Context, v *entity.DataValue) (*entity.DataValue, error)
	ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]*entity.DataValue, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value string) (*entity.DataValue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dataValueRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDataValueRepository(client *ent.Client, logger *slog.Logger) DataValueRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &dataValueRepository{client: client, logger: logger}
}

func (r *dataValueRepository) Upsert(ctx context.Context, v *entity.DataValue) (*entity.DataValue, error) {
	value := Truncate(v.Value, ValueLimit)

	existing, err := r.client.DataValue.Query().
		Where(
			datavalueent.FieldIDEQ(v.FieldID),
			datavalueent.ReceiptID(v.ReceiptID),
			datavalueent.Row(v.Row),
		).
		Only(ctx)
	if err == nil {
		updated, err := r.client.DataValue.UpdateOneID(existing.ID).
			SetValue(value).
			SetX(v.Box.X).
			SetY(v.Box.Y).
			SetWidth(v.Box.Width).
			SetHeight(v.Box.Height).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update data value", "field_id", v.FieldID, "receipt_id", v.ReceiptID, "row", v.Row, "error", err)
			return nil, err
		}
		return toDataValue(updated), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.DataValue.Create().
		SetFieldID(v.FieldID).
		SetReceiptID(v.ReceiptID).
		SetRow(v.Row).
		SetValue(value).
		SetX(v.Box.X).
		SetY(v.Box.Y).
		SetWidth(v.Box.Width).
		SetHeight(v.Box.Height).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create data value", "field_id", v.FieldID, "receipt_id", v.ReceiptID, "row", v.Row, "error", err)
		return nil, err
	}
	return toDataValue(created), nil
}

func (r *dataValueRepository) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]*entity.DataValue, error) {
	vs, err := r.client.DataValue.Query().
		Where(datavalueent.ReceiptID(receiptID)).
		Order(datavalueent.ByRow(), datavalueent.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list data values", "receipt_id", receiptID, "error", err)
		return nil, err
	}
	out := make([]*entity.DataValue, len(vs))
	for i, v := range vs {
		out[i] = toDataValue(v)
	}
	return out, nil
}

func (r *dataValueRepository) UpdateValue(ctx context.Context, id uuid.UUID, value string) (*entity.DataValue, error) {
	v, err := r.client.DataValue.UpdateOneID(id).
		SetValue(Truncate(value, ValueLimit)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update data value", "data_value_id", id, "error", err)
		return nil, err
	}
	return toDataValue(v), nil
}

func (r *dataValueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.DataValue.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete data value", "data_value_id", id, "error", err)
		return err
	}
	return nil
}
