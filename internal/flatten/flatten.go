// Package flatten reconciles a nested extraction result with a project's
// field tree and persists one flat DataValue per leaf per row. Array fields
// fan their elements out into 1-based rows; everything else lives in row 0.
package flatten

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// ErrShapeMismatch is returned when the JSON kind of a result value does
// not match the field it names: an array where an object field expects a
// nested object, a scalar where an array field expects elements, and so on.
// Unknown keys are tolerated; wrong kinds are not.
var ErrShapeMismatch = errors.New("extraction result shape does not match field tree")

// ValueStore is the persistence slice the flattener needs: an upsert keyed
// by (field, receipt, row).
type ValueStore interface {
	Upsert(ctx context.Context, v *entity.DataValue) (*entity.DataValue, error)
}

type Flattener struct {
	store  ValueStore
	logger *slog.Logger
}

func New(store ValueStore, logger *slog.Logger) *Flattener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flattener{store: store, logger: logger}
}

// Flatten walks result in lock-step with the field trees and upserts one
// DataValue per leaf per row. Reprocessing a receipt overwrites prior rows
// through the upsert. After the walk, any leaf outside an array subtree
// that received nothing at all gets an empty row-0 record, so flat export
// can assume full column coverage for non-repeating fields.
func (f *Flattener) Flatten(ctx context.Context, receiptID uuid.UUID, fields []*entity.Field, result map[string]any) ([]*entity.DataValue, error) {
	w := &walker{f: f, receiptID: receiptID, seen: map[uuid.UUID]struct{}{}}
	if err := w.walk(ctx, fields, result, 0); err != nil {
		return nil, err
	}
	if err := w.backfill(ctx, fields); err != nil {
		return nil, err
	}
	f.logger.Info("flatten.done", "receipt_id", receiptID, "values", len(w.out))
	return w.out, nil
}

type walker struct {
	f         *Flattener
	receiptID uuid.UUID
	seen      map[uuid.UUID]struct{}
	out       []*entity.DataValue
}

func (w *walker) walk(ctx context.Context, scope []*entity.Field, result map[string]any, row int) error {
	for key, raw := range result {
		field := findField(scope, key)
		if field == nil {
			// extra provider output, ignore
			continue
		}
		switch {
		case field.IsLeaf():
			if err := w.emitLeaf(ctx, field, raw, row); err != nil {
				return err
			}
		case field.Type == constants.FieldTypeArray:
			if raw == nil {
				continue
			}
			elems, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("field %q: expected array, got %T: %w", field.Name, raw, ErrShapeMismatch)
			}
			for i, elem := range elems {
				obj, ok := elem.(map[string]any)
				if !ok {
					return fmt.Errorf("field %q[%d]: expected object element, got %T: %w", field.Name, i, elem, ErrShapeMismatch)
				}
				// rows are 1-based; row 0 is reserved for non-repeating leaves
				if err := w.walk(ctx, field.Children, obj, i+1); err != nil {
					return err
				}
			}
		default: // object
			if raw == nil {
				continue
			}
			obj, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("field %q: expected object, got %T: %w", field.Name, raw, ErrShapeMismatch)
			}
			if err := w.walk(ctx, field.Children, obj, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) emitLeaf(ctx context.Context, field *entity.Field, raw any, row int) error {
	value, box, err := leafPair(field, raw)
	if err != nil {
		return err
	}
	dv := &entity.DataValue{
		FieldID:   field.ID,
		ReceiptID: w.receiptID,
		Row:       row,
		Value:     value,
		Box:       box,
	}
	saved, err := w.f.store.Upsert(ctx, dv)
	if err != nil {
		return fmt.Errorf("upsert value for field %q row %d: %w", field.Name, row, err)
	}
	w.seen[field.ID] = struct{}{}
	w.out = append(w.out, saved)
	return nil
}

// backfill writes empty row-0 records for leaves the provider omitted
// entirely. Leaves under an array ancestor are excluded: their rows are
// driven purely by the elements the provider returned.
func (w *walker) backfill(ctx context.Context, fields []*entity.Field) error {
	var visit func(fs []*entity.Field) error
	visit = func(fs []*entity.Field) error {
		for _, f := range fs {
			if f.Type == constants.FieldTypeArray {
				continue
			}
			if !f.IsLeaf() {
				if err := visit(f.Children); err != nil {
					return err
				}
				continue
			}
			if _, ok := w.seen[f.ID]; ok {
				continue
			}
			saved, err := w.f.store.Upsert(ctx, &entity.DataValue{
				FieldID:   f.ID,
				ReceiptID: w.receiptID,
				Row:       0,
			})
			if err != nil {
				return fmt.Errorf("backfill value for field %q: %w", f.Name, err)
			}
			w.out = append(w.out, saved)
		}
		return nil
	}
	return visit(fields)
}

func findField(scope []*entity.Field, name string) *entity.Field {
	for _, f := range scope {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// leafPair splits a {value, coordinates} pair into its stored string value
// and bounding box. A null or missing value becomes an empty string, and
// missing coordinates default to zero. A bare scalar in leaf position is
// accepted as a value with no coordinates.
func leafPair(field *entity.Field, raw any) (string, entity.BoundingBox, error) {
	switch v := raw.(type) {
	case nil:
		return "", entity.BoundingBox{}, nil
	case map[string]any:
		value, err := stringify(field, v["value"])
		if err != nil {
			return "", entity.BoundingBox{}, err
		}
		return value, boxFrom(v["coordinates"]), nil
	case []any:
		return "", entity.BoundingBox{}, fmt.Errorf("field %q: expected value pair, got array: %w", field.Name, ErrShapeMismatch)
	default:
		value, err := stringify(field, raw)
		if err != nil {
			return "", entity.BoundingBox{}, err
		}
		return value, entity.BoundingBox{}, nil
	}
}

func stringify(field *entity.Field, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("field %q: expected scalar value, got %T: %w", field.Name, v, ErrShapeMismatch)
	}
}

func boxFrom(v any) entity.BoundingBox {
	m, ok := v.(map[string]any)
	if !ok {
		return entity.BoundingBox{}
	}
	num := func(key string) float64 {
		if f, ok := m[key].(float64); ok {
			return f
		}
		return 0
	}
	return entity.BoundingBox{
		X:      num("x"),
		Y:      num("y"),
		Width:  num("width"),
		Height: num("height"),
	}
}
