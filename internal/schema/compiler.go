// Package schema compiles a project's field tree into the extraction
// contract handed to the LLM provider. The compiler is a pure function of
// the tree: siblings are ordered by name, so recompiling an unchanged tree
// yields an identical contract.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// ContractName is the schema name reported to providers that require one.
const ContractName = "receipt_response"

// Contract builds the strict structured-output contract for the given
// top-level fields. Every scalar field becomes an object with a typed
// "value" and a "coordinates" bounding box, object fields nest, and array
// fields wrap their children in an items object. All properties are
// required and additional properties are rejected so a conforming response
// is structurally guaranteed to match the tree.
func Contract(fields []*entity.Field) map[string]any {
	props := properties(fields)
	return closedObject(props)
}

// ResponseFormat wraps Contract in the provider envelope used for
// schema-constrained generation.
func ResponseFormat(fields []*entity.Field) map[string]any {
	return map[string]any{
		"type":   "json_schema",
		"strict": true,
		"name":   ContractName,
		"schema": Contract(fields),
	}
}

func properties(fields []*entity.Field) map[string]any {
	sorted := make([]*entity.Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	props := make(map[string]any, len(sorted))
	for _, f := range sorted {
		switch f.Type {
		case constants.FieldTypeObject:
			props[f.Name] = closedObject(properties(f.Children))
		case constants.FieldTypeArray:
			props[f.Name] = map[string]any{
				"type":  "array",
				"items": closedObject(properties(f.Children)),
			}
		default:
			props[f.Name] = leafSchema(f)
		}
	}
	return props
}

func closedObject(props map[string]any) map[string]any {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func leafSchema(f *entity.Field) map[string]any {
	var value map[string]any
	switch f.Type {
	case constants.FieldTypeDate:
		value = map[string]any{"type": "string", "format": "date"}
	default:
		value = map[string]any{"type": string(f.Type)}
	}
	if f.Description != "" {
		value["description"] = f.Description
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value":       value,
			"coordinates": coordinatesSchema(),
		},
		"required":             []string{"value", "coordinates"},
		"additionalProperties": false,
	}
}

func coordinatesSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x":      map[string]any{"type": "number"},
			"y":      map[string]any{"type": "number"},
			"width":  map[string]any{"type": "number"},
			"height": map[string]any{"type": "number"},
		},
		"required":             []string{"x", "y", "width", "height"},
		"additionalProperties": false,
	}
}

// Describe renders the contract as commented pseudo-JSON for providers
// without schema-constrained generation. The output follows the same
// sibling ordering as Contract.
func Describe(fields []*entity.Field) string {
	var b strings.Builder
	b.WriteString("{\n")
	describeFields(&b, fields, 1)
	b.WriteString("}")
	return b.String()
}

func describeFields(b *strings.Builder, fields []*entity.Field, depth int) {
	sorted := make([]*entity.Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	pad := strings.Repeat("  ", depth)
	for i, f := range sorted {
		comma := ","
		if i == len(sorted)-1 {
			comma = ""
		}
		switch f.Type {
		case constants.FieldTypeObject:
			fmt.Fprintf(b, "%s%q: {%s\n", pad, f.Name, comment(f))
			describeFields(b, f.Children, depth+1)
			fmt.Fprintf(b, "%s}%s\n", pad, comma)
		case constants.FieldTypeArray:
			fmt.Fprintf(b, "%s%q: [%s\n", pad, f.Name, comment(f))
			fmt.Fprintf(b, "%s  {\n", pad)
			describeFields(b, f.Children, depth+2)
			fmt.Fprintf(b, "%s  }\n", pad)
			fmt.Fprintf(b, "%s]%s\n", pad, comma)
		default:
			fmt.Fprintf(b, "%s%q: {\"value\": %s, \"coordinates\": {\"x\": number, \"y\": number, \"width\": number, \"height\": number}}%s%s\n",
				pad, f.Name, leafTypeName(f.Type), comma, comment(f))
		}
	}
}

func leafTypeName(t constants.FieldType) string {
	if t == constants.FieldTypeDate {
		return "string (ISO-8601 date, YYYY-MM-DD)"
	}
	return string(t)
}

func comment(f *entity.Field) string {
	if f.Description == "" {
		return ""
	}
	return " // " + f.Description
}
