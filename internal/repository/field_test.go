package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

type fieldFixture struct {
	fields  FieldRepository
	project *entity.Project
}

func newFieldFixture(t *testing.T) *fieldFixture {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := testClient(t)

	projects := NewProjectRepository(client, logger)
	project, err := projects.Create(ctx, &CreateProjectRequest{OwnerID: uuid.New(), Name: "groceries"})
	require.NoError(t, err)

	return &fieldFixture{fields: NewFieldRepository(client, logger), project: project}
}

func (fx *fieldFixture) create(t *testing.T, name string, typ constants.FieldType, parentID *uuid.UUID) *entity.Field {
	t.Helper()
	f, err := fx.fields.Create(context.Background(), &CreateFieldRequest{
		ProjectID: fx.project.ID,
		ParentID:  parentID,
		Name:      name,
		Type:      typ,
	})
	require.NoError(t, err)
	return f
}

func TestUpdateFieldClearParentDetachesToTopLevel(t *testing.T) {
	fx := newFieldFixture(t)
	ctx := context.Background()

	items := fx.create(t, "items", constants.FieldTypeArray, nil)
	notes := fx.create(t, "notes", constants.FieldTypeString, &items.ID)

	updated, err := fx.fields.Update(ctx, notes.ID, &UpdateFieldRequest{ClearParent: true})
	require.NoError(t, err)
	require.Nil(t, updated.ParentID)

	forest, err := fx.fields.ListForest(ctx, fx.project.ID)
	require.NoError(t, err)
	require.Len(t, forest, 2)
	require.Equal(t, "items", forest[0].Name)
	require.Empty(t, forest[0].Children)
	require.Equal(t, "notes", forest[1].Name)
}

func TestUpdateFieldReparentCycleRejected(t *testing.T) {
	fx := newFieldFixture(t)
	ctx := context.Background()

	outer := fx.create(t, "outer", constants.FieldTypeObject, nil)
	inner := fx.create(t, "inner", constants.FieldTypeObject, &outer.ID)

	_, err := fx.fields.Update(ctx, outer.ID, &UpdateFieldRequest{ParentID: &inner.ID})
	require.ErrorContains(t, err, "cycle")
}

func TestCreateFieldRejectsScalarParent(t *testing.T) {
	fx := newFieldFixture(t)

	vendor := fx.create(t, "vendor", constants.FieldTypeString, nil)

	_, err := fx.fields.Create(context.Background(), &CreateFieldRequest{
		ProjectID: fx.project.ID,
		ParentID:  &vendor.ID,
		Name:      "child",
		Type:      constants.FieldTypeString,
	})
	require.ErrorContains(t, err, "cannot own children")
}
