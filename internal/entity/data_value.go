package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/constants"
)

// BoundingBox locates a value on the page. Zero when the provider could not
// estimate a position.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DataValue is one persisted leaf value: one field, one receipt, one row.
type DataValue struct {
	ID        uuid.UUID   `json:"id"`
	FieldID   uuid.UUID   `json:"field_id"`
	ReceiptID uuid.UUID   `json:"receipt_id"`
	Row       int         `json:"row"`
	Value     string      `json:"value"`
	Box       BoundingBox `json:"coordinates"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// QualifiedName derives the flat export name of v by walking the parent
// chain upward, inserting the row index at each array ancestor. arena maps
// every field in the project by id.
func (v *DataValue) QualifiedName(arena map[uuid.UUID]*Field) string {
	f, ok := arena[v.FieldID]
	if !ok {
		return ""
	}
	name := f.Name
	parent := (*Field)(nil)
	if f.ParentID != nil {
		parent = arena[*f.ParentID]
	}
	for parent != nil {
		if parent.Type == constants.FieldTypeArray {
			name = fmt.Sprintf("%s_%s_%d", parent.Name, name, v.Row)
		} else {
			name = parent.Name + "_" + name
		}
		if parent.ParentID == nil {
			break
		}
		parent = arena[*parent.ParentID]
	}
	return name
}
