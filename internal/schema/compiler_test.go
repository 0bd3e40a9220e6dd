package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

func leaf(name string, t constants.FieldType, desc string) *entity.Field {
	return &entity.Field{ID: uuid.New(), Name: name, Type: t, Description: desc}
}

func container(name string, t constants.FieldType, children ...*entity.Field) *entity.Field {
	return &entity.Field{ID: uuid.New(), Name: name, Type: t, Children: children}
}

func receiptFields() []*entity.Field {
	return []*entity.Field{
		leaf("vendor", constants.FieldTypeString, "merchant name"),
		leaf("total", constants.FieldTypeNumber, ""),
		leaf("purchased_at", constants.FieldTypeDate, ""),
		container("items", constants.FieldTypeArray,
			leaf("name", constants.FieldTypeString, ""),
			leaf("price", constants.FieldTypeNumber, ""),
		),
	}
}

func TestContractScalarLeaf(t *testing.T) {
	c := Contract([]*entity.Field{leaf("vendor", constants.FieldTypeString, "merchant name")})

	require.Equal(t, "object", c["type"])
	require.Equal(t, false, c["additionalProperties"])
	require.Equal(t, []string{"vendor"}, c["required"])

	props := c["properties"].(map[string]any)
	vendor := props["vendor"].(map[string]any)
	require.Equal(t, []string{"value", "coordinates"}, vendor["required"])
	require.Equal(t, false, vendor["additionalProperties"])

	vp := vendor["properties"].(map[string]any)
	value := vp["value"].(map[string]any)
	require.Equal(t, "string", value["type"])
	require.Equal(t, "merchant name", value["description"])

	coords := vp["coordinates"].(map[string]any)
	require.Equal(t, []string{"x", "y", "width", "height"}, coords["required"])
}

func TestContractDateLeafUsesDateFormat(t *testing.T) {
	c := Contract([]*entity.Field{leaf("purchased_at", constants.FieldTypeDate, "")})

	props := c["properties"].(map[string]any)
	vp := props["purchased_at"].(map[string]any)["properties"].(map[string]any)
	value := vp["value"].(map[string]any)
	require.Equal(t, "string", value["type"])
	require.Equal(t, "date", value["format"])
}

func TestContractArrayWrapsChildrenAsItems(t *testing.T) {
	c := Contract(receiptFields())

	props := c["properties"].(map[string]any)
	items := props["items"].(map[string]any)
	require.Equal(t, "array", items["type"])

	itemObj := items["items"].(map[string]any)
	require.Equal(t, "object", itemObj["type"])
	require.Equal(t, []string{"name", "price"}, itemObj["required"])
	require.Equal(t, false, itemObj["additionalProperties"])
}

func TestContractRequiredSortedAndComplete(t *testing.T) {
	c := Contract(receiptFields())
	require.Equal(t, []string{"items", "purchased_at", "total", "vendor"}, c["required"])
}

func TestContractDeterministic(t *testing.T) {
	a, err := json.Marshal(Contract(receiptFields()))
	require.NoError(t, err)
	b, err := json.Marshal(Contract(receiptFields()))
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestResponseFormatEnvelope(t *testing.T) {
	rf := ResponseFormat(receiptFields())
	require.Equal(t, "json_schema", rf["type"])
	require.Equal(t, true, rf["strict"])
	require.Equal(t, ContractName, rf["name"])
	require.NotNil(t, rf["schema"])
}

func TestDescribeRendersTree(t *testing.T) {
	d := Describe(receiptFields())

	require.True(t, strings.HasPrefix(d, "{"))
	require.True(t, strings.HasSuffix(d, "}"))
	require.Contains(t, d, `"vendor"`)
	require.Contains(t, d, "// merchant name")
	require.Contains(t, d, `"items": [`)
	require.Contains(t, d, "ISO-8601 date")
	require.Contains(t, d, `"coordinates"`)

	// ordering is by name within each sibling set
	require.Less(t, strings.Index(d, `"items"`), strings.Index(d, `"vendor"`))
	require.Less(t, strings.Index(d, `"name"`), strings.Index(d, `"price"`))
}

func TestDescribeDeterministic(t *testing.T) {
	require.Equal(t, Describe(receiptFields()), Describe(receiptFields()))
}
