package repository

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/gen/ent"
	"github.com/receiptiq/receiptiq/internal/entity"
)

func testClient(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLiteInMemory(context.Background(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

type valueFixture struct {
	fields   FieldRepository
	receipts ReceiptRepository
	values   DataValueRepository
	field    *entity.Field
	receipt  *entity.Receipt
}

func newValueFixture(t *testing.T) *valueFixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testClient(t)

	projects := NewProjectRepository(client, logger)
	fields := NewFieldRepository(client, logger)
	receipts := NewReceiptRepository(client, logger)

	project, err := projects.Create(ctx, &CreateProjectRequest{OwnerID: uuid.New(), Name: "groceries"})
	require.NoError(t, err)
	field, err := fields.Create(ctx, &CreateFieldRequest{
		ProjectID: project.ID,
		Name:      "vendor",
		Type:      constants.FieldTypeString,
	})
	require.NoError(t, err)
	receipt, err := receipts.Create(ctx, &CreateReceiptRequest{
		ProjectID: project.ID,
		FilePath:  "groceries/a.pdf",
		FileName:  "a.pdf",
		MimeType:  "application/pdf",
	})
	require.NoError(t, err)

	return &valueFixture{
		fields:   fields,
		receipts: receipts,
		values:   NewDataValueRepository(client, logger),
		field:    field,
		receipt:  receipt,
	}
}

func TestUpsertCreatesThenUpdatesSameTriple(t *testing.T) {
	fx := newValueFixture(t)
	ctx := context.Background()

	created, err := fx.values.Upsert(ctx, &entity.DataValue{
		FieldID:   fx.field.ID,
		ReceiptID: fx.receipt.ID,
		Row:       0,
		Value:     "ACME",
		Box:       entity.BoundingBox{X: 10, Y: 20, Width: 50, Height: 12},
	})
	require.NoError(t, err)

	updated, err := fx.values.Upsert(ctx, &entity.DataValue{
		FieldID:   fx.field.ID,
		ReceiptID: fx.receipt.ID,
		Row:       0,
		Value:     "ACME Corp",
		Box:       entity.BoundingBox{X: 11, Y: 21, Width: 60, Height: 13},
	})
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID, "same (field, receipt, row) must update in place")
	require.Equal(t, "ACME Corp", updated.Value)
	require.Equal(t, 11.0, updated.Box.X)

	stored, err := fx.values.ListByReceipt(ctx, fx.receipt.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "ACME Corp", stored[0].Value)
}

func TestUpsertDistinctRowsAndOrdering(t *testing.T) {
	fx := newValueFixture(t)
	ctx := context.Background()

	for _, row := range []int{2, 0, 1} {
		_, err := fx.values.Upsert(ctx, &entity.DataValue{
			FieldID:   fx.field.ID,
			ReceiptID: fx.receipt.ID,
			Row:       row,
			Value:     "v",
		})
		require.NoError(t, err)
	}

	stored, err := fx.values.ListByReceipt(ctx, fx.receipt.ID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	require.Equal(t, 0, stored[0].Row)
	require.Equal(t, 1, stored[1].Row)
	require.Equal(t, 2, stored[2].Row)
}

func TestUpsertTruncatesOversizeValue(t *testing.T) {
	fx := newValueFixture(t)
	ctx := context.Background()

	v, err := fx.values.Upsert(ctx, &entity.DataValue{
		FieldID:   fx.field.ID,
		ReceiptID: fx.receipt.ID,
		Value:     strings.Repeat("x", ValueLimit+50),
	})
	require.NoError(t, err)
	require.Len(t, v.Value, ValueLimit)
}

func TestDeleteFieldCascadesValues(t *testing.T) {
	fx := newValueFixture(t)
	ctx := context.Background()

	_, err := fx.values.Upsert(ctx, &entity.DataValue{
		FieldID:   fx.field.ID,
		ReceiptID: fx.receipt.ID,
		Value:     "ACME",
	})
	require.NoError(t, err)

	require.NoError(t, fx.fields.Delete(ctx, fx.field.ID))

	stored, err := fx.values.ListByReceipt(ctx, fx.receipt.ID)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestDeleteReceiptCascadesValues(t *testing.T) {
	fx := newValueFixture(t)
	ctx := context.Background()

	_, err := fx.values.Upsert(ctx, &entity.DataValue{
		FieldID:   fx.field.ID,
		ReceiptID: fx.receipt.ID,
		Value:     "ACME",
	})
	require.NoError(t, err)

	require.NoError(t, fx.receipts.Delete(ctx, fx.receipt.ID))

	stored, err := fx.values.ListByReceipt(ctx, fx.receipt.ID)
	require.NoError(t, err)
	require.Empty(t, stored)
}
