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
	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/db/ent/schema/utils"
)

type Field struct{ ent.Schema }

func (Field) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fields"},
	}
}

func (Field) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("parent_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").NotEmpty().MaxLen(100),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.String("description").Optional().MaxLen(500),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Field) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY fields -> ONE project (FK: fields.project_id)
		edge.From("project", Project.Type).
			Ref("fields").
			Field("project_id").
			Required().
			Unique(),
		// self reference: MANY children -> ONE parent (FK: fields.parent_id)
		edge.To("children", Field.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)).
			From("parent").
			Field("parent_id").
			Unique(),
		// ONE field -> MANY data values
		edge.To("values", DataValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Field) Indexes() []ent.Index {
	return []ent.Index{
		// name is unique among siblings within a project
		index.Fields("project_id", "parent_id", "name").Unique(),
		index.Fields("project_id"),
	}
}
