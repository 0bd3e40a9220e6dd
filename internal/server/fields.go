package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	receiptiqpb "github.com/receiptiq/receiptiq/gen/proto/receiptiq/v1"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/repository"
)

// FieldServer implements receiptiq.v1.FieldService.
type FieldServer struct {
	receiptiqpb.UnimplementedFieldServiceServer
	fields repository.FieldRepository
	logger *slog.Logger
}

func NewFieldServer(fields repository.FieldRepository, logger *slog.Logger) *FieldServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldServer{fields: fields, logger: logger}
}

func (s *FieldServer) CreateField(ctx context.Context, req *receiptiqpb.CreateFieldRequest) (*receiptiqpb.CreateFieldResponse, error) {
	projectID, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if !constants.IsValidFieldType(req.GetType()) {
		return nil, common.InvalidArgumentErrorf("invalid field type %q", req.GetType())
	}

	var parentID *uuid.UUID
	if req.GetParentId() != "" {
		id, err := parseUUID(req.GetParentId(), "parent_id")
		if err != nil {
			return nil, err
		}
		parentID = &id
	}

	f, err := s.fields.Create(ctx, &repository.CreateFieldRequest{
		ProjectID:   projectID,
		ParentID:    parentID,
		Name:        name,
		Type:        constants.FieldType(req.GetType()),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	s.logger.Info("field created", "field_id", f.ID, "project_id", projectID, "name", name)
	return &receiptiqpb.CreateFieldResponse{Field: toPBField(f)}, nil
}

func (s *FieldServer) UpdateField(ctx context.Context, req *receiptiqpb.UpdateFieldRequest) (*receiptiqpb.UpdateFieldResponse, error) {
	id, err := parseUUID(req.GetFieldId(), "field_id")
	if err != nil {
		return nil, err
	}

	update := &repository.UpdateFieldRequest{}
	if req.Name != nil {
		name := strings.TrimSpace(req.GetName())
		if name == "" {
			return nil, common.InvalidArgumentError("name cannot be empty")
		}
		update.Name = &name
	}
	if req.Description != nil {
		desc := req.GetDescription()
		update.Description = &desc
	}
	if req.ParentId != nil {
		// an explicit empty parent_id detaches the field to top level
		if strings.TrimSpace(req.GetParentId()) == "" {
			update.ClearParent = true
		} else {
			parentID, err := parseUUID(req.GetParentId(), "parent_id")
			if err != nil {
				return nil, err
			}
			update.ParentID = &parentID
		}
	}

	f, err := s.fields.Update(ctx, id, update)
	if err != nil {
		return nil, mapFieldError(err)
	}
	return &receiptiqpb.UpdateFieldResponse{Field: toPBField(f)}, nil
}

func (s *FieldServer) DeleteField(ctx context.Context, req *receiptiqpb.DeleteFieldRequest) (*receiptiqpb.DeleteFieldResponse, error) {
	id, err := parseUUID(req.GetFieldId(), "field_id")
	if err != nil {
		return nil, err
	}
	if err := s.fields.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err, "field")
	}
	return &receiptiqpb.DeleteFieldResponse{}, nil
}

func (s *FieldServer) ListFields(ctx context.Context, req *receiptiqpb.ListFieldsRequest) (*receiptiqpb.ListFieldsResponse, error) {
	projectID, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	forest, err := s.fields.ListForest(ctx, projectID)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	out := make([]*receiptiqpb.Field, len(forest))
	for i, f := range forest {
		out[i] = toPBField(f)
	}
	return &receiptiqpb.ListFieldsResponse{Fields: out}, nil
}

// mapFieldError keeps schema shape violations (bad parent, cycle, bad type)
// as InvalidArgument rather than Internal.
func mapFieldError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "cycle") ||
		strings.Contains(msg, "cannot own children") ||
		strings.Contains(msg, "invalid field type") {
		return common.InvalidArgumentError(msg)
	}
	return mapRepoError(err, "field")
}
