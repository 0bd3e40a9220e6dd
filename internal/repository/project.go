package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/gen/ent"
	"github.com/receiptiq/receiptiq/gen/ent/project"
	"github.com/receiptiq/receiptiq/internal/entity"
)

type CreateProjectRequest struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
}

type ProjectRepository interface {
	Create(ctx context.Context, req *CreateProjectRequest) (*entity.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &projectRepository{client: client, logger: logger}
}

func (r *projectRepository) Create(ctx context.Context, req *CreateProjectRequest) (*entity.Project, error) {
	p, err := r.client.Project.Create().
		SetOwnerID(req.OwnerID).
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", req.Name, "error", err)
		return nil, err
	}
	return toProject(p), nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	p, err := r.client.Project.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProject(p), nil
}

func (r *projectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error) {
	ps, err := r.client.Project.Query().
		Where(project.OwnerID(ownerID)).
		Order(project.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list projects", "owner_id", ownerID, "error", err)
		return nil, err
	}
	out := make([]*entity.Project, len(ps))
	for i, p := range ps {
		out[i] = toProject(p)
	}
	return out, nil
}

// Delete removes the project; fields and receipts (and their values) go with
// it via cascade.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Project.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete project", "project_id", id, "error", err)
		return err
	}
	r.logger.Info("project deleted", "project_id", id)
	return nil
}
