// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DataValuesColumns holds the columns for the "data_values" table.
	DataValuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row", Type: field.TypeInt, Default: 0},
		{Name: "value", Type: field.TypeString, Size: 300},
		{Name: "x", Type: field.TypeFloat64, Default: 0},
		{Name: "y", Type: field.TypeFloat64, Default: 0},
		{Name: "width", Type: field.TypeFloat64, Default: 0},
		{Name: "height", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "field_id", Type: field.TypeUUID},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// DataValuesTable holds the schema information for the "data_values" table.
	DataValuesTable = &schema.Table{
		Name:       "data_values",
		Columns:    DataValuesColumns,
		PrimaryKey: []*schema.Column{DataValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "data_values_fields_values",
				Columns:    []*schema.Column{DataValuesColumns[9]},
				RefColumns: []*schema.Column{FieldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "data_values_receipts_values",
				Columns:    []*schema.Column{DataValuesColumns[10]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datavalue_field_id_receipt_id_row",
				Unique:  true,
				Columns: []*schema.Column{DataValuesColumns[9], DataValuesColumns[10], DataValuesColumns[1]},
			},
			{
				Name:    "datavalue_receipt_id",
				Unique:  false,
				Columns: []*schema.Column{DataValuesColumns[10]},
			},
		},
	}
	// FieldsColumns holds the columns for the "fields" table.
	FieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// FieldsTable holds the schema information for the "fields" table.
	FieldsTable = &schema.Table{
		Name:       "fields",
		Columns:    FieldsColumns,
		PrimaryKey: []*schema.Column{FieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fields_fields_children",
				Columns:    []*schema.Column{FieldsColumns[6]},
				RefColumns: []*schema.Column{FieldsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "fields_projects_fields",
				Columns:    []*schema.Column{FieldsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "field_project_id_parent_id_name",
				Unique:  true,
				Columns: []*schema.Column{FieldsColumns[7], FieldsColumns[6], FieldsColumns[1]},
			},
			{
				Name:    "field_project_id",
				Unique:  false,
				Columns: []*schema.Column{FieldsColumns[7]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString, Size: 500},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "mime_type", Type: field.TypeString, Size: 100},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 500, SchemaType: map[string]string{"postgres": "varchar(500)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_projects_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[8], ReceiptsColumns[4]},
			},
			{
				Name:    "receipt_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[8], ReceiptsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DataValuesTable,
		FieldsTable,
		ProjectsTable,
		ReceiptsTable,
	}
)

func init() {
	DataValuesTable.ForeignKeys[0].RefTable = FieldsTable
	DataValuesTable.ForeignKeys[1].RefTable = ReceiptsTable
	DataValuesTable.Annotation = &entsql.Annotation{
		Table: "data_values",
	}
	FieldsTable.ForeignKeys[0].RefTable = FieldsTable
	FieldsTable.ForeignKeys[1].RefTable = ProjectsTable
	FieldsTable.Annotation = &entsql.Annotation{
		Table: "fields",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = ProjectsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
}
