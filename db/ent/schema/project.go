package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Project struct{ ent.Schema }

func (Project) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "projects"},
	}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("name").NotEmpty().MaxLen(100),
		field.String("description").Optional().MaxLen(500),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE project -> MANY fields (cascade delete)
		edge.To("fields", Field.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// ONE project -> MANY receipts (cascade delete)
		edge.To("receipts", Receipt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
