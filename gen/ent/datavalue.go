// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/gen/ent/datavalue"
	entfield "github.com/receiptiq/receiptiq/gen/ent/field"
	"github.com/receiptiq/receiptiq/gen/ent/receipt"
)

// DataValue is the model entity for the DataValue schema.
type DataValue struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FieldID holds the value of the "field_id" field.
	FieldID uuid.UUID `json:"field_id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// Row holds the value of the "row" field.
	Row int `json:"row,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// X holds the value of the "x" field.
	X float64 `json:"x,omitempty"`
	// Y holds the value of the "y" field.
	Y float64 `json:"y,omitempty"`
	// Width holds the value of the "width" field.
	Width float64 `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height float64 `json:"height,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataValueQuery when eager-loading is set.
	Edges        DataValueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataValueEdges holds the relations/edges for other nodes in the graph.
type DataValueEdges struct {
	// SchemaField holds the value of the schema_field edge.
	SchemaField *Field `json:"schema_field,omitempty"`
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SchemaFieldOrErr returns the SchemaField value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataValueEdges) SchemaFieldOrErr() (*Field, error) {
	if e.SchemaField != nil {
		return e.SchemaField, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: entfield.Label}
	}
	return nil, &NotLoadedError{edge: "schema_field"}
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataValueEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataValue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datavalue.FieldX, datavalue.FieldY, datavalue.FieldWidth, datavalue.FieldHeight:
			values[i] = new(sql.NullFloat64)
		case datavalue.FieldRow:
			values[i] = new(sql.NullInt64)
		case datavalue.FieldValue:
			values[i] = new(sql.NullString)
		case datavalue.FieldCreatedAt, datavalue.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case datavalue.FieldID, datavalue.FieldFieldID, datavalue.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataValue fields.
func (_m *DataValue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datavalue.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case datavalue.FieldFieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value != nil {
				_m.FieldID = *value
			}
		case datavalue.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case datavalue.FieldRow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row", values[i])
			} else if value.Valid {
				_m.Row = int(value.Int64)
			}
		case datavalue.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case datavalue.FieldX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = value.Float64
			}
		case datavalue.FieldY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = value.Float64
			}
		case datavalue.FieldWidth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = value.Float64
			}
		case datavalue.FieldHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = value.Float64
			}
		case datavalue.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case datavalue.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the DataValue.
// This includes values selected through modifiers, order, etc.
func (_m *DataValue) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySchemaField queries the "schema_field" edge of the DataValue entity.
func (_m *DataValue) QuerySchemaField() *FieldQuery {
	return NewDataValueClient(_m.config).QuerySchemaField(_m)
}

// QueryReceipt queries the "receipt" edge of the DataValue entity.
func (_m *DataValue) QueryReceipt() *ReceiptQuery {
	return NewDataValueClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this DataValue.
// Note that you need to call DataValue.Unwrap() before calling this method if this DataValue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DataValue) Update() *DataValueUpdateOne {
	return NewDataValueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DataValue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DataValue) Unwrap() *DataValue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataValue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DataValue) String() string {
	var builder strings.Builder
	builder.WriteString("DataValue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("field_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldID))
	builder.WriteString(", ")
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	builder.WriteString("row=")
	builder.WriteString(fmt.Sprintf("%v", _m.Row))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataValues is a parsable slice of DataValue.
type DataValues []*DataValue
