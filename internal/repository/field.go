package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/gen/ent"
	fieldent "github.com/receiptiq/receiptiq/gen/ent/field"
	"github.com/receiptiq/receiptiq/internal/entity"
)

type CreateFieldRequest struct {
	ProjectID   uuid.UUID
	ParentID    *uuid.UUID
	Name        string
	Type        constants.FieldType
	Description string
}

type UpdateFieldRequest struct {
	Name        *string
	Type        *constants.FieldType
	Description *string
	ParentID    *uuid.UUID // reparent; rejected if it would create a cycle
	ClearParent bool       // detach from the current parent (top level)
}

type FieldRepository interface {
	Create(ctx context.Context, req *CreateFieldRequest) (*entity.Field, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Field, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateFieldRequest) (*entity.Field, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListForest returns the project's top-level fields with children attached.
	ListForest(ctx context.Context, projectID uuid.UUID) ([]*entity.Field, error)
	// Arena returns every field of the project keyed by id (flat, unlinked).
	Arena(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]*entity.Field, error)
}

type fieldRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFieldRepository(client *ent.Client, logger *slog.Logger) FieldRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &fieldRepository{client: client, logger: logger}
}

func (r *fieldRepository) Create(ctx context.Context, req *CreateFieldRequest) (*entity.Field, error) {
	if !constants.IsValidFieldType(string(req.Type)) {
		return nil, fmt.Errorf("invalid field type: %q", req.Type)
	}
	if req.ParentID != nil {
		parent, err := r.client.Field.Get(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("load parent field: %w", err)
		}
		if !constants.FieldType(parent.Type).IsContainer() {
			return nil, fmt.Errorf("field %q of type %s cannot own children", parent.Name, parent.Type)
		}
	}
	builder := r.client.Field.Create().
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetType(string(req.Type)).
		SetDescription(req.Description)
	if req.ParentID != nil {
		builder = builder.SetParentID(*req.ParentID)
	}
	f, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create field", "project_id", req.ProjectID, "name", req.Name, "error", err)
		return nil, err
	}
	return toField(f), nil
}

func (r *fieldRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	f, err := r.client.Field.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toField(f), nil
}

func (r *fieldRepository) Update(ctx context.Context, id uuid.UUID, req *UpdateFieldRequest) (*entity.Field, error) {
	cur, err := r.client.Field.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	builder := r.client.Field.UpdateOneID(id)
	if req.Name != nil {
		builder = builder.SetName(*req.Name)
	}
	if req.Type != nil {
		if !constants.IsValidFieldType(string(*req.Type)) {
			return nil, fmt.Errorf("invalid field type: %q", *req.Type)
		}
		builder = builder.SetType(string(*req.Type))
	}
	if req.Description != nil {
		builder = builder.SetDescription(*req.Description)
	}
	if req.ClearParent {
		builder = builder.ClearParentID()
	} else if req.ParentID != nil {
		arena, err := r.Arena(ctx, cur.ProjectID)
		if err != nil {
			return nil, err
		}
		if entity.WouldCreateCycle(arena, id, *req.ParentID) {
			return nil, fmt.Errorf("reparenting field %s under %s would create a cycle", id, *req.ParentID)
		}
		builder = builder.SetParentID(*req.ParentID)
	}
	f, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update field", "field_id", id, "error", err)
		return nil, err
	}
	return toField(f), nil
}

// Delete removes the field; children and data values cascade.
func (r *fieldRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Field.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete field", "field_id", id, "error", err)
		return err
	}
	return nil
}

func (r *fieldRepository) ListForest(ctx context.Context, projectID uuid.UUID) ([]*entity.Field, error) {
	fs, err := r.client.Field.Query().
		Where(fieldent.ProjectID(projectID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list fields", "project_id", projectID, "error", err)
		return nil, err
	}
	flat := make([]*entity.Field, len(fs))
	for i, f := range fs {
		flat[i] = toField(f)
	}
	return entity.BuildForest(flat), nil
}

func (r *fieldRepository) Arena(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]*entity.Field, error) {
	fs, err := r.client.Field.Query().
		Where(fieldent.ProjectID(projectID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	arena := make(map[uuid.UUID]*entity.Field, len(fs))
	for _, f := range fs {
		arena[f.ID] = toField(f)
	}
	return arena, nil
}
