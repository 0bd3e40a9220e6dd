package constants

// FieldType is the canonical type tag for rows in fields.
type FieldType string

// Stable values (store these exact strings in DB).
const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeDate    FieldType = "date"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeObject  FieldType = "object"
	FieldTypeArray   FieldType = "array"
)

// FieldTypes holds the allowed values for the type field in Field.
var FieldTypes = []string{
	string(FieldTypeString),
	string(FieldTypeNumber),
	string(FieldTypeDate),
	string(FieldTypeBoolean),
	string(FieldTypeObject),
	string(FieldTypeArray),
}

// IsValidFieldType reports whether s is one of the canonical field types.
func IsValidFieldType(s string) bool {
	for _, t := range FieldTypes {
		if s == t {
			return true
		}
	}
	return false
}

// IsContainer reports whether t may own child fields.
func (t FieldType) IsContainer() bool {
	return t == FieldTypeObject || t == FieldTypeArray
}
