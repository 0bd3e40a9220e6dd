package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
)

func newField(name string, typ constants.FieldType, parent *Field) *Field {
	f := &Field{ID: uuid.New(), Name: name, Type: typ}
	if parent != nil {
		id := parent.ID
		f.ParentID = &id
	}
	return f
}

func TestBuildForestLinksAndSorts(t *testing.T) {
	items := newField("items", constants.FieldTypeArray, nil)
	vendor := newField("vendor", constants.FieldTypeString, nil)
	price := newField("price", constants.FieldTypeNumber, items)
	name := newField("name", constants.FieldTypeString, items)

	// deliberately unordered input
	forest := BuildForest([]*Field{price, vendor, name, items})

	require.Len(t, forest, 2)
	require.Equal(t, "items", forest[0].Name)
	require.Equal(t, "vendor", forest[1].Name)

	require.Len(t, forest[0].Children, 2)
	require.Equal(t, "name", forest[0].Children[0].Name)
	require.Equal(t, "price", forest[0].Children[1].Name)
	require.Empty(t, forest[1].Children)
}

func TestBuildForestOrphanBecomesRoot(t *testing.T) {
	missing := uuid.New()
	orphan := &Field{ID: uuid.New(), Name: "orphan", Type: constants.FieldTypeString, ParentID: &missing}

	forest := BuildForest([]*Field{orphan})

	require.Len(t, forest, 1)
	require.Equal(t, "orphan", forest[0].Name)
}

func TestBuildForestResetsStaleChildren(t *testing.T) {
	vendor := newField("vendor", constants.FieldTypeString, nil)
	vendor.Children = []*Field{newField("stale", constants.FieldTypeString, nil)}

	forest := BuildForest([]*Field{vendor})

	require.Len(t, forest, 1)
	require.Empty(t, forest[0].Children)
}

func TestLeaves(t *testing.T) {
	items := newField("items", constants.FieldTypeArray, nil)
	vendor := newField("vendor", constants.FieldTypeString, nil)
	price := newField("price", constants.FieldTypeNumber, items)

	forest := BuildForest([]*Field{items, vendor, price})
	leaves := Leaves(forest)

	require.Len(t, leaves, 2)
	names := []string{leaves[0].Name, leaves[1].Name}
	require.ElementsMatch(t, []string{"price", "vendor"}, names)
}

func TestWouldCreateCycle(t *testing.T) {
	root := newField("root", constants.FieldTypeObject, nil)
	mid := newField("mid", constants.FieldTypeObject, root)
	leaf := newField("leaf", constants.FieldTypeString, mid)
	other := newField("other", constants.FieldTypeObject, nil)

	arena := map[uuid.UUID]*Field{
		root.ID: root, mid.ID: mid, leaf.ID: leaf, other.ID: other,
	}

	require.True(t, WouldCreateCycle(arena, root.ID, root.ID), "self-parenting")
	require.True(t, WouldCreateCycle(arena, root.ID, mid.ID), "parent under its child")
	require.True(t, WouldCreateCycle(arena, root.ID, leaf.ID), "parent under its grandchild")
	require.False(t, WouldCreateCycle(arena, mid.ID, other.ID))
	require.False(t, WouldCreateCycle(arena, leaf.ID, root.ID))
}

func TestQualifiedNameScalars(t *testing.T) {
	vendor := newField("vendor", constants.FieldTypeString, nil)
	arena := map[uuid.UUID]*Field{vendor.ID: vendor}

	v := &DataValue{FieldID: vendor.ID, Row: 0}
	require.Equal(t, "vendor", v.QualifiedName(arena))
}

func TestQualifiedNameNested(t *testing.T) {
	total := newField("total", constants.FieldTypeObject, nil)
	tax := newField("tax", constants.FieldTypeNumber, total)
	arena := map[uuid.UUID]*Field{total.ID: total, tax.ID: tax}

	v := &DataValue{FieldID: tax.ID, Row: 0}
	require.Equal(t, "total_tax", v.QualifiedName(arena))
}

func TestQualifiedNameArrayAncestorCarriesRow(t *testing.T) {
	items := newField("items", constants.FieldTypeArray, nil)
	price := newField("price", constants.FieldTypeNumber, items)
	arena := map[uuid.UUID]*Field{items.ID: items, price.ID: price}

	v := &DataValue{FieldID: price.ID, Row: 3}
	require.Equal(t, "items_price_3", v.QualifiedName(arena))
}

func TestQualifiedNameUnknownField(t *testing.T) {
	v := &DataValue{FieldID: uuid.New()}
	require.Equal(t, "", v.QualifiedName(map[uuid.UUID]*Field{}))
}
