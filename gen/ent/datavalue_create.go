// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/gen/ent/datavalue"
	entfield "github.com/receiptiq/receiptiq/gen/ent/field"
	"github.com/receiptiq/receiptiq/gen/ent/receipt"
)

// DataValueCreate is the builder for creating a DataValue entity.
type DataValueCreate struct {
	config
	mutation *DataValueMutation
	hooks    []Hook
}

// SetFieldID sets the "field_id" field.
func (_c *DataValueCreate) SetFieldID(v uuid.UUID) *DataValueCreate {
	_c.mutation.SetFieldID(v)
	return _c
}

// SetReceiptID sets the "receipt_id" field.
func (_c *DataValueCreate) SetReceiptID(v uuid.UUID) *DataValueCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetRow sets the "row" field.
func (_c *DataValueCreate) SetRow(v int) *DataValueCreate {
	_c.mutation.SetRow(v)
	return _c
}

// SetNillableRow sets the "row" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableRow(v *int) *DataValueCreate {
	if v != nil {
		_c.SetRow(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *DataValueCreate) SetValue(v string) *DataValueCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetX sets the "x" field.
func (_c *DataValueCreate) SetX(v float64) *DataValueCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableX(v *float64) *DataValueCreate {
	if v != nil {
		_c.SetX(*v)
	}
	return _c
}

// SetY sets the "y" field.
func (_c *DataValueCreate) SetY(v float64) *DataValueCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableY(v *float64) *DataValueCreate {
	if v != nil {
		_c.SetY(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *DataValueCreate) SetWidth(v float64) *DataValueCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableWidth(v *float64) *DataValueCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *DataValueCreate) SetHeight(v float64) *DataValueCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableHeight(v *float64) *DataValueCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataValueCreate) SetCreatedAt(v time.Time) *DataValueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableCreatedAt(v *time.Time) *DataValueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DataValueCreate) SetUpdatedAt(v time.Time) *DataValueCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableUpdatedAt(v *time.Time) *DataValueCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataValueCreate) SetID(v uuid.UUID) *DataValueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DataValueCreate) SetNillableID(v *uuid.UUID) *DataValueCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSchemaFieldID sets the "schema_field" edge to the Field entity by ID.
func (_c *DataValueCreate) SetSchemaFieldID(id uuid.UUID) *DataValueCreate {
	_c.mutation.SetSchemaFieldID(id)
	return _c
}

// SetSchemaField sets the "schema_field" edge to the Field entity.
func (_c *DataValueCreate) SetSchemaField(v *Field) *DataValueCreate {
	return _c.SetSchemaFieldID(v.ID)
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *DataValueCreate) SetReceipt(v *Receipt) *DataValueCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the DataValueMutation object of the builder.
func (_c *DataValueCreate) Mutation() *DataValueMutation {
	return _c.mutation
}

// Save creates the DataValue in the database.
func (_c *DataValueCreate) Save(ctx context.Context) (*DataValue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataValueCreate) SaveX(ctx context.Context) *DataValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataValueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataValueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataValueCreate) defaults() {
	if _, ok := _c.mutation.Row(); !ok {
		v := datavalue.DefaultRow
		_c.mutation.SetRow(v)
	}
	if _, ok := _c.mutation.X(); !ok {
		v := datavalue.DefaultX
		_c.mutation.SetX(v)
	}
	if _, ok := _c.mutation.Y(); !ok {
		v := datavalue.DefaultY
		_c.mutation.SetY(v)
	}
	if _, ok := _c.mutation.Width(); !ok {
		v := datavalue.DefaultWidth
		_c.mutation.SetWidth(v)
	}
	if _, ok := _c.mutation.Height(); !ok {
		v := datavalue.DefaultHeight
		_c.mutation.SetHeight(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datavalue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := datavalue.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := datavalue.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataValueCreate) check() error {
	if _, ok := _c.mutation.FieldID(); !ok {
		return &ValidationError{Name: "field_id", err: errors.New(`ent: missing required field "DataValue.field_id"`)}
	}
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "DataValue.receipt_id"`)}
	}
	if _, ok := _c.mutation.Row(); !ok {
		return &ValidationError{Name: "row", err: errors.New(`ent: missing required field "DataValue.row"`)}
	}
	if v, ok := _c.mutation.Row(); ok {
		if err := datavalue.RowValidator(v); err != nil {
			return &ValidationError{Name: "row", err: fmt.Errorf(`ent: validator failed for field "DataValue.row": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "DataValue.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := datavalue.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DataValue.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "DataValue.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "DataValue.y"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "DataValue.width"`)}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "DataValue.height"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataValue.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DataValue.updated_at"`)}
	}
	if len(_c.mutation.SchemaFieldIDs()) == 0 {
		return &ValidationError{Name: "schema_field", err: errors.New(`ent: missing required edge "DataValue.schema_field"`)}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "DataValue.receipt"`)}
	}
	return nil
}

func (_c *DataValueCreate) sqlSave(ctx context.Context) (*DataValue, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataValueCreate) createSpec() (*DataValue, *sqlgraph.CreateSpec) {
	var (
		_node = &DataValue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datavalue.Table, sqlgraph.NewFieldSpec(datavalue.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Row(); ok {
		_spec.SetField(datavalue.FieldRow, field.TypeInt, value)
		_node.Row = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(datavalue.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(datavalue.FieldX, field.TypeFloat64, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(datavalue.FieldY, field.TypeFloat64, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(datavalue.FieldWidth, field.TypeFloat64, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(datavalue.FieldHeight, field.TypeFloat64, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datavalue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(datavalue.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SchemaFieldIDs(); len(nodes) > 0 {
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
		_node.FieldID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DataValueCreateBulk is the builder for creating many DataValue entities in bulk.
type DataValueCreateBulk struct {
	config
	err      error
	builders []*DataValueCreate
}

// Save creates the DataValue entities in the database.
func (_c *DataValueCreateBulk) Save(ctx context.Context) ([]*DataValue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataValue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataValueMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DataValueCreateBulk) SaveX(ctx context.Context) []*DataValue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataValueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataValueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
