// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/gen/ent/datavalue"
	entfield "github.com/receiptiq/receiptiq/gen/ent/field"
	"github.com/receiptiq/receiptiq/gen/ent/predicate"
	"github.com/receiptiq/receiptiq/gen/ent/receipt"
)

// DataValueUpdate is the builder for updating DataValue entities.
type DataValueUpdate struct {
	config
	hooks    []Hook
	mutation *DataValueMutation
}

// Where appends a list predicates to the DataValueUpdate builder.
func (_u *DataValueUpdate) Where(ps ...predicate.DataValue) *DataValueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *DataValueUpdate) SetFieldID(v uuid.UUID) *DataValueUpdate {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableFieldID(v *uuid.UUID) *DataValueUpdate {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *DataValueUpdate) SetReceiptID(v uuid.UUID) *DataValueUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableReceiptID(v *uuid.UUID) *DataValueUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetRow sets the "row" field.
func (_u *DataValueUpdate) SetRow(v int) *DataValueUpdate {
	_u.mutation.ResetRow()
	_u.mutation.SetRow(v)
	return _u
}

// SetNillableRow sets the "row" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableRow(v *int) *DataValueUpdate {
	if v != nil {
		_u.SetRow(*v)
	}
	return _u
}

// AddRow adds value to the "row" field.
func (_u *DataValueUpdate) AddRow(v int) *DataValueUpdate {
	_u.mutation.AddRow(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *DataValueUpdate) SetValue(v string) *DataValueUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableValue(v *string) *DataValueUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *DataValueUpdate) SetX(v float64) *DataValueUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableX(v *float64) *DataValueUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *DataValueUpdate) AddX(v float64) *DataValueUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *DataValueUpdate) SetY(v float64) *DataValueUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableY(v *float64) *DataValueUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *DataValueUpdate) AddY(v float64) *DataValueUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *DataValueUpdate) SetWidth(v float64) *DataValueUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableWidth(v *float64) *DataValueUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *DataValueUpdate) AddWidth(v float64) *DataValueUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *DataValueUpdate) SetHeight(v float64) *DataValueUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableHeight(v *float64) *DataValueUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *DataValueUpdate) AddHeight(v float64) *DataValueUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DataValueUpdate) SetCreatedAt(v time.Time) *DataValueUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DataValueUpdate) SetNillableCreatedAt(v *time.Time) *DataValueUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataValueUpdate) SetUpdatedAt(v time.Time) *DataValueUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchemaFieldID sets the "schema_field" edge to the Field entity by ID.
func (_u *DataValueUpdate) SetSchemaFieldID(id uuid.UUID) *DataValueUpdate {
	_u.mutation.SetSchemaFieldID(id)
	return _u
}

// SetSchemaField sets the "schema_field" edge to the Field entity.
func (_u *DataValueUpdate) SetSchemaField(v *Field) *DataValueUpdate {
	return _u.SetSchemaFieldID(v.ID)
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *DataValueUpdate) SetReceipt(v *Receipt) *DataValueUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the DataValueMutation object of the builder.
func (_u *DataValueUpdate) Mutation() *DataValueMutation {
	return _u.mutation
}

// ClearSchemaField clears the "schema_field" edge to the Field entity.
func (_u *DataValueUpdate) ClearSchemaField() *DataValueUpdate {
	_u.mutation.ClearSchemaField()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *DataValueUpdate) ClearReceipt() *DataValueUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataValueUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataValueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataValueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataValueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataValueUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datavalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataValueUpdate) check() error {
	if v, ok := _u.mutation.Row(); ok {
		if err := datavalue.RowValidator(v); err != nil {
			return &ValidationError{Name: "row", err: fmt.Errorf(`ent: validator failed for field "DataValue.row": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := datavalue.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DataValue.value": %w`, err)}
		}
	}
	if _u.mutation.SchemaFieldCleared() && len(_u.mutation.SchemaFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataValue.schema_field"`)
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataValue.receipt"`)
	}
	return nil
}

func (_u *DataValueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datavalue.Table, datavalue.Columns, sqlgraph.NewFieldSpec(datavalue.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Row(); ok {
		_spec.SetField(datavalue.FieldRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRow(); ok {
		_spec.AddField(datavalue.FieldRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(datavalue.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(datavalue.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(datavalue.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(datavalue.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(datavalue.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(datavalue.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(datavalue.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(datavalue.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(datavalue.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(datavalue.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(datavalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchemaFieldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.SchemaFieldTable,
			Columns: []string{datavalue.SchemaFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchemaFieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.SchemaFieldTable,
			Columns: []string{datavalue.SchemaFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.ReceiptTable,
			Columns: []string{datavalue.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.ReceiptTable,
			Columns: []string{datavalue.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datavalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataValueUpdateOne is the builder for updating a single DataValue entity.
type DataValueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataValueMutation
}

// SetFieldID sets the "field_id" field.
func (_u *DataValueUpdateOne) SetFieldID(v uuid.UUID) *DataValueUpdateOne {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableFieldID(v *uuid.UUID) *DataValueUpdateOne {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *DataValueUpdateOne) SetReceiptID(v uuid.UUID) *DataValueUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableReceiptID(v *uuid.UUID) *DataValueUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetRow sets the "row" field.
func (_u *DataValueUpdateOne) SetRow(v int) *DataValueUpdateOne {
	_u.mutation.ResetRow()
	_u.mutation.SetRow(v)
	return _u
}

// SetNillableRow sets the "row" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableRow(v *int) *DataValueUpdateOne {
	if v != nil {
		_u.SetRow(*v)
	}
	return _u
}

// AddRow adds value to the "row" field.
func (_u *DataValueUpdateOne) AddRow(v int) *DataValueUpdateOne {
	_u.mutation.AddRow(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *DataValueUpdateOne) SetValue(v string) *DataValueUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableValue(v *string) *DataValueUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetX sets the "x" field.
func (_u *DataValueUpdateOne) SetX(v float64) *DataValueUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableX(v *float64) *DataValueUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *DataValueUpdateOne) AddX(v float64) *DataValueUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *DataValueUpdateOne) SetY(v float64) *DataValueUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableY(v *float64) *DataValueUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *DataValueUpdateOne) AddY(v float64) *DataValueUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *DataValueUpdateOne) SetWidth(v float64) *DataValueUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableWidth(v *float64) *DataValueUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *DataValueUpdateOne) AddWidth(v float64) *DataValueUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *DataValueUpdateOne) SetHeight(v float64) *DataValueUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableHeight(v *float64) *DataValueUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *DataValueUpdateOne) AddHeight(v float64) *DataValueUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DataValueUpdateOne) SetCreatedAt(v time.Time) *DataValueUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DataValueUpdateOne) SetNillableCreatedAt(v *time.Time) *DataValueUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataValueUpdateOne) SetUpdatedAt(v time.Time) *DataValueUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSchemaFieldID sets the "schema_field" edge to the Field entity by ID.
func (_u *DataValueUpdateOne) SetSchemaFieldID(id uuid.UUID) *DataValueUpdateOne {
	_u.mutation.SetSchemaFieldID(id)
	return _u
}

// SetSchemaField sets the "schema_field" edge to the Field entity.
func (_u *DataValueUpdateOne) SetSchemaField(v *Field) *DataValueUpdateOne {
	return _u.SetSchemaFieldID(v.ID)
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *DataValueUpdateOne) SetReceipt(v *Receipt) *DataValueUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the DataValueMutation object of the builder.
func (_u *DataValueUpdateOne) Mutation() *DataValueMutation {
	return _u.mutation
}

// ClearSchemaField clears the "schema_field" edge to the Field entity.
func (_u *DataValueUpdateOne) ClearSchemaField() *DataValueUpdateOne {
	_u.mutation.ClearSchemaField()
	return _u
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *DataValueUpdateOne) ClearReceipt() *DataValueUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the DataValueUpdate builder.
func (_u *DataValueUpdateOne) Where(ps ...predicate.DataValue) *DataValueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataValueUpdateOne) Select(field string, fields ...string) *DataValueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataValue entity.
func (_u *DataValueUpdateOne) Save(ctx context.Context) (*DataValue, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataValueUpdateOne) SaveX(ctx context.Context) *DataValue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataValueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataValueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataValueUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datavalue.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataValueUpdateOne) check() error {
	if v, ok := _u.mutation.Row(); ok {
		if err := datavalue.RowValidator(v); err != nil {
			return &ValidationError{Name: "row", err: fmt.Errorf(`ent: validator failed for field "DataValue.row": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := datavalue.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DataValue.value": %w`, err)}
		}
	}
	if _u.mutation.SchemaFieldCleared() && len(_u.mutation.SchemaFieldIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataValue.schema_field"`)
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataValue.receipt"`)
	}
	return nil
}

func (_u *DataValueUpdateOne) sqlSave(ctx context.Context) (_node *DataValue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datavalue.Table, datavalue.Columns, sqlgraph.NewFieldSpec(datavalue.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataValue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datavalue.FieldID)
		for _, f := range fields {
			if !datavalue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datavalue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Row(); ok {
		_spec.SetField(datavalue.FieldRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRow(); ok {
		_spec.AddField(datavalue.FieldRow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(datavalue.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(datavalue.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(datavalue.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(datavalue.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(datavalue.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(datavalue.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(datavalue.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(datavalue.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(datavalue.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(datavalue.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(datavalue.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SchemaFieldCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.SchemaFieldTable,
			Columns: []string{datavalue.SchemaFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchemaFieldIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.SchemaFieldTable,
			Columns: []string{datavalue.SchemaFieldColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.ReceiptTable,
			Columns: []string{datavalue.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datavalue.ReceiptTable,
			Columns: []string{datavalue.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataValue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datavalue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
