package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

type fixture struct {
	forest   []*entity.Field
	arena    map[uuid.UUID]*entity.Field
	receipts []*entity.Receipt
	values   map[uuid.UUID][]*entity.DataValue
}

func (f *fixture) ListByProject(context.Context, uuid.UUID) ([]*entity.Receipt, error) {
	return f.receipts, nil
}

func (f *fixture) ListByReceipt(_ context.Context, receiptID uuid.UUID) ([]*entity.DataValue, error) {
	return f.values[receiptID], nil
}

func (f *fixture) ListForest(context.Context, uuid.UUID) ([]*entity.Field, error) {
	return f.forest, nil
}

func (f *fixture) Arena(context.Context, uuid.UUID) (map[uuid.UUID]*entity.Field, error) {
	return f.arena, nil
}

// two receipts over a schema with a scalar and an array: the first receipt
// has two line items, the second has one.
func newFixture() (*fixture, *entity.Field, *entity.Field) {
	projectID := uuid.New()
	vendor := &entity.Field{ID: uuid.New(), ProjectID: projectID, Name: "vendor", Type: constants.FieldTypeString}
	items := &entity.Field{ID: uuid.New(), ProjectID: projectID, Name: "items", Type: constants.FieldTypeArray}
	name := &entity.Field{ID: uuid.New(), ProjectID: projectID, ParentID: &items.ID, Name: "name", Type: constants.FieldTypeString}
	items.Children = []*entity.Field{name}

	r1 := &entity.Receipt{ID: uuid.New(), ProjectID: projectID, FileName: "a.pdf", Status: constants.StatusCompleted}
	r2 := &entity.Receipt{ID: uuid.New(), ProjectID: projectID, FileName: "b.pdf", Status: constants.StatusCompleted}

	dv := func(field *entity.Field, receipt *entity.Receipt, row int, value string) *entity.DataValue {
		return &entity.DataValue{ID: uuid.New(), FieldID: field.ID, ReceiptID: receipt.ID, Row: row, Value: value}
	}

	f := &fixture{
		forest: []*entity.Field{items, vendor},
		arena: map[uuid.UUID]*entity.Field{
			vendor.ID: vendor, items.ID: items, name.ID: name,
		},
		receipts: []*entity.Receipt{r1, r2},
		values: map[uuid.UUID][]*entity.DataValue{
			r1.ID: {
				dv(vendor, r1, 0, "ACME"),
				dv(name, r1, 1, "coffee"),
				dv(name, r1, 2, "bagel"),
			},
			r2.ID: {
				dv(vendor, r2, 0, "Corner Deli"),
				dv(name, r2, 1, "juice"),
			},
		},
	}
	return f, vendor, name
}

func TestExportCSVQualifiedColumns(t *testing.T) {
	f, _, _ := newFixture()
	svc := NewService(f, f, f, nil)

	out, err := svc.ExportCSV(context.Background(), uuid.New())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	require.Equal(t, []string{"receipt_id", "file_name", "status", "items_name_1", "items_name_2", "vendor"}, header)

	// first receipt fills both item columns
	require.Equal(t, "a.pdf", records[1][1])
	require.Equal(t, "coffee", records[1][3])
	require.Equal(t, "bagel", records[1][4])
	require.Equal(t, "ACME", records[1][5])

	// second receipt leaves the unused item column empty
	require.Equal(t, "juice", records[2][3])
	require.Equal(t, "", records[2][4])
	require.Equal(t, "Corner Deli", records[2][5])
}

func TestExportCSVEmptyProject(t *testing.T) {
	f := &fixture{}
	svc := NewService(f, f, f, nil)

	out, err := svc.ExportCSV(context.Background(), uuid.New())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, []string{"receipt_id", "file_name", "status"}, records[0])
}

func TestExportXLSXMatchesTable(t *testing.T) {
	f, _, _ := newFixture()
	svc := NewService(f, f, f, nil)

	out, err := svc.ExportXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "vendor", rows[0][5])
	require.Equal(t, "ACME", rows[1][5])
	require.Equal(t, "juice", rows[2][3])
}
