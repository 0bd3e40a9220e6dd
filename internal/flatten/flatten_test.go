package flatten

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// memStore upserts values by (field, receipt, row), like the repository.
type memStore struct {
	values  map[[3]string]*entity.DataValue
	upserts int
}

func newMemStore() *memStore {
	return &memStore{values: map[[3]string]*entity.DataValue{}}
}

func (s *memStore) Upsert(_ context.Context, v *entity.DataValue) (*entity.DataValue, error) {
	s.upserts++
	key := [3]string{v.FieldID.String(), v.ReceiptID.String(), itoa(v.Row)}
	if existing, ok := s.values[key]; ok {
		existing.Value = v.Value
		existing.Box = v.Box
		return existing, nil
	}
	stored := *v
	stored.ID = uuid.New()
	s.values[key] = &stored
	return &stored, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func (s *memStore) get(fieldID uuid.UUID, receiptID uuid.UUID, row int) *entity.DataValue {
	return s.values[[3]string{fieldID.String(), receiptID.String(), itoa(row)}]
}

func leaf(name string, t constants.FieldType) *entity.Field {
	return &entity.Field{ID: uuid.New(), Name: name, Type: t}
}

func container(name string, t constants.FieldType, children ...*entity.Field) *entity.Field {
	return &entity.Field{ID: uuid.New(), Name: name, Type: t, Children: children}
}

func TestFlattenScalarLeaves(t *testing.T) {
	vendor := leaf("vendor", constants.FieldTypeString)
	total := leaf("total", constants.FieldTypeNumber)
	receiptID := uuid.New()
	store := newMemStore()

	result := map[string]any{
		"vendor": map[string]any{
			"value":       "ACME",
			"coordinates": map[string]any{"x": 10.0, "y": 20.0, "width": 50.0, "height": 12.0},
		},
		"total": map[string]any{
			"value":       12.5,
			"coordinates": map[string]any{"x": 10.0, "y": 40.0, "width": 30.0, "height": 12.0},
		},
	}

	out, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{vendor, total}, result)
	require.NoError(t, err)
	require.Len(t, out, 2)

	v := store.get(vendor.ID, receiptID, 0)
	require.Equal(t, "ACME", v.Value)
	require.Equal(t, entity.BoundingBox{X: 10, Y: 20, Width: 50, Height: 12}, v.Box)

	tv := store.get(total.ID, receiptID, 0)
	require.Equal(t, "12.5", tv.Value)
}

func TestFlattenArrayFansOutRows(t *testing.T) {
	name := leaf("name", constants.FieldTypeString)
	price := leaf("price", constants.FieldTypeNumber)
	items := container("items", constants.FieldTypeArray, name, price)
	receiptID := uuid.New()
	store := newMemStore()

	item := func(n string, p float64) map[string]any {
		return map[string]any{
			"name":  map[string]any{"value": n},
			"price": map[string]any{"value": p},
		}
	}
	result := map[string]any{
		"items": []any{item("coffee", 3.5), item("bagel", 2.25), item("juice", 4.0)},
	}

	out, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{items}, result)
	require.NoError(t, err)
	require.Len(t, out, 6)

	// rows are 1-based
	require.Nil(t, store.get(name.ID, receiptID, 0))
	require.Equal(t, "coffee", store.get(name.ID, receiptID, 1).Value)
	require.Equal(t, "bagel", store.get(name.ID, receiptID, 2).Value)
	require.Equal(t, "juice", store.get(name.ID, receiptID, 3).Value)
	require.Equal(t, "2.25", store.get(price.ID, receiptID, 2).Value)
}

func TestFlattenObjectKeepsRow(t *testing.T) {
	street := leaf("street", constants.FieldTypeString)
	city := leaf("city", constants.FieldTypeString)
	address := container("address", constants.FieldTypeObject, street, city)
	receiptID := uuid.New()
	store := newMemStore()

	result := map[string]any{
		"address": map[string]any{
			"street": map[string]any{"value": "1 Main St"},
			"city":   map[string]any{"value": "Springfield"},
		},
	}

	_, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{address}, result)
	require.NoError(t, err)
	require.Equal(t, "1 Main St", store.get(street.ID, receiptID, 0).Value)
	require.Equal(t, "Springfield", store.get(city.ID, receiptID, 0).Value)
}

func TestFlattenReprocessOverwrites(t *testing.T) {
	vendor := leaf("vendor", constants.FieldTypeString)
	receiptID := uuid.New()
	store := newMemStore()
	f := New(store, nil)

	first := map[string]any{"vendor": map[string]any{"value": "ACME"}}
	second := map[string]any{"vendor": map[string]any{"value": "ACME Corp"}}

	_, err := f.Flatten(context.Background(), receiptID, []*entity.Field{vendor}, first)
	require.NoError(t, err)
	_, err = f.Flatten(context.Background(), receiptID, []*entity.Field{vendor}, second)
	require.NoError(t, err)

	require.Len(t, store.values, 1)
	require.Equal(t, "ACME Corp", store.get(vendor.ID, receiptID, 0).Value)
}

func TestFlattenNullValueStoredEmpty(t *testing.T) {
	vendor := leaf("vendor", constants.FieldTypeString)
	receiptID := uuid.New()
	store := newMemStore()

	result := map[string]any{"vendor": map[string]any{"value": nil}}
	_, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{vendor}, result)
	require.NoError(t, err)

	v := store.get(vendor.ID, receiptID, 0)
	require.NotNil(t, v)
	require.Equal(t, "", v.Value)
}

func TestFlattenBackfillsOmittedLeaves(t *testing.T) {
	vendor := leaf("vendor", constants.FieldTypeString)
	total := leaf("total", constants.FieldTypeNumber)
	name := leaf("name", constants.FieldTypeString)
	items := container("items", constants.FieldTypeArray, name)
	receiptID := uuid.New()
	store := newMemStore()

	// provider returned only the vendor and no items at all
	result := map[string]any{"vendor": map[string]any{"value": "ACME"}}
	_, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{vendor, total, items}, result)
	require.NoError(t, err)

	// omitted scalar leaf gets an empty row-0 record
	tv := store.get(total.ID, receiptID, 0)
	require.NotNil(t, tv)
	require.Equal(t, "", tv.Value)

	// array-descendant leaves are not backfilled
	require.Nil(t, store.get(name.ID, receiptID, 0))
}

func TestFlattenIgnoresUnknownKeys(t *testing.T) {
	vendor := leaf("vendor", constants.FieldTypeString)
	receiptID := uuid.New()
	store := newMemStore()

	result := map[string]any{
		"vendor":     map[string]any{"value": "ACME"},
		"confidence": 0.93,
		"notes":      map[string]any{"value": "n/a"},
	}
	out, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{vendor}, result)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestFlattenShapeMismatchFailsLoudly(t *testing.T) {
	name := leaf("name", constants.FieldTypeString)
	items := container("items", constants.FieldTypeArray, name)
	address := container("address", constants.FieldTypeObject, leaf("city", constants.FieldTypeString))
	receiptID := uuid.New()

	cases := []struct {
		desc   string
		fields []*entity.Field
		result map[string]any
	}{
		{"scalar for array field", []*entity.Field{items}, map[string]any{"items": "coffee"}},
		{"scalar element in array", []*entity.Field{items}, map[string]any{"items": []any{"coffee"}}},
		{"array for object field", []*entity.Field{address}, map[string]any{"address": []any{}}},
		{"object in leaf value", []*entity.Field{name}, map[string]any{"name": map[string]any{"value": map[string]any{}}}},
	}
	for _, tc := range cases {
		_, err := New(newMemStore(), nil).Flatten(context.Background(), receiptID, tc.fields, tc.result)
		require.ErrorIs(t, err, ErrShapeMismatch, tc.desc)
	}
}

func TestFlattenNestedArrayDepth(t *testing.T) {
	qty := leaf("qty", constants.FieldTypeNumber)
	mods := container("modifiers", constants.FieldTypeArray, qty)
	items := container("items", constants.FieldTypeArray, mods)
	receiptID := uuid.New()
	store := newMemStore()

	result := map[string]any{
		"items": []any{
			map[string]any{
				"modifiers": []any{
					map[string]any{"qty": map[string]any{"value": 2.0}},
					map[string]any{"qty": map[string]any{"value": 3.0}},
				},
			},
		},
	}
	_, err := New(store, nil).Flatten(context.Background(), receiptID, []*entity.Field{items}, result)
	require.NoError(t, err)

	// the innermost array resets the row to its own 1-based index
	require.Equal(t, "2", store.get(qty.ID, receiptID, 1).Value)
	require.Equal(t, "3", store.get(qty.ID, receiptID, 2).Value)
}
