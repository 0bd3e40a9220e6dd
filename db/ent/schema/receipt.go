package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/db/ent/schema/utils"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("file_path").NotEmpty().MaxLen(500),
		field.String("file_name").NotEmpty().MaxLen(255),
		field.String("mime_type").NotEmpty().MaxLen(100),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ReceiptStatuses...)),
		field.String("error_message").Optional().Nillable().MaxLen(500).
			SchemaType(map[string]string{dialect.Postgres: "varchar(500)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY receipts -> ONE project (FK: receipts.project_id)
		edge.From("project", Project.Type).
			Ref("receipts").
			Field("project_id").
			Required().
			Unique(),
		// ONE receipt -> MANY data values
		edge.To("values", DataValue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("project_id", "created_at"),
	}
}
