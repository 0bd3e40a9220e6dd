package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type DataValue struct{ ent.Schema }

func (DataValue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_values"},
	}
}

func (DataValue) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define the composite unique index
		field.UUID("field_id", uuid.UUID{}),
		field.UUID("receipt_id", uuid.UUID{}),
		// row disambiguates repeated instances under an array ancestor;
		// 0 is reserved for leaves with no array ancestor.
		field.Int("row").Default(0).NonNegative(),
		field.String("value").MaxLen(300),
		field.Float("x").Default(0),
		field.Float("y").Default(0),
		field.Float("width").Default(0),
		field.Float("height").Default(0),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DataValue) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY values -> ONE field (FK: data_values.field_id). The edge
		// cannot be named "field": entc would emit a FieldCleared() edge
		// helper shadowing ent's Mutation.FieldCleared(name string).
		edge.From("schema_field", Field.Type).
			Ref("values").
			Field("field_id").
			Required().
			Unique(),
		// MANY values -> ONE receipt (FK: data_values.receipt_id)
		edge.From("receipt", Receipt.Type).
			Ref("values").
			Field("receipt_id").
			Required().
			Unique(),
	}
}

func (DataValue) Indexes() []ent.Index {
	return []ent.Index{
		// at most one value per (field, receipt, row)
		index.Fields("field_id", "receipt_id", "row").Unique(),
		index.Fields("receipt_id"),
	}
}
