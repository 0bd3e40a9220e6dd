package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	receiptiqpb "github.com/receiptiq/receiptiq/gen/proto/receiptiq/v1"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/export"
	"github.com/receiptiq/receiptiq/internal/pipeline"
	"github.com/receiptiq/receiptiq/internal/repository"
)

// ProjectServer implements receiptiq.v1.ProjectService.
type ProjectServer struct {
	receiptiqpb.UnimplementedProjectServiceServer
	projects  repository.ProjectRepository
	receipts  repository.ReceiptRepository
	fields    repository.FieldRepository
	values    repository.DataValueRepository
	processor *pipeline.Processor
	exporter  *export.Service
	logger    *slog.Logger
}

func NewProjectServer(
	projects repository.ProjectRepository,
	receipts repository.ReceiptRepository,
	fields repository.FieldRepository,
	values repository.DataValueRepository,
	processor *pipeline.Processor,
	exporter *export.Service,
	logger *slog.Logger,
) *ProjectServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectServer{
		projects:  projects,
		receipts:  receipts,
		fields:    fields,
		values:    values,
		processor: processor,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *ProjectServer) CreateProject(ctx context.Context, req *receiptiqpb.CreateProjectRequest) (*receiptiqpb.CreateProjectResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	p, err := s.projects.Create(ctx, &repository.CreateProjectRequest{
		OwnerID:     ownerID,
		Name:        name,
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	s.logger.Info("project created", "project_id", p.ID, "owner_id", ownerID)
	return &receiptiqpb.CreateProjectResponse{Project: toPBProject(p)}, nil
}

func (s *ProjectServer) GetProject(ctx context.Context, req *receiptiqpb.GetProjectRequest) (*receiptiqpb.GetProjectResponse, error) {
	id, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	return &receiptiqpb.GetProjectResponse{Project: toPBProject(p)}, nil
}

func (s *ProjectServer) ListProjects(ctx context.Context, req *receiptiqpb.ListProjectsRequest) (*receiptiqpb.ListProjectsResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	ps, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	out := make([]*receiptiqpb.Project, len(ps))
	for i, p := range ps {
		out[i] = toPBProject(p)
	}
	return &receiptiqpb.ListProjectsResponse{Projects: out}, nil
}

func (s *ProjectServer) DeleteProject(ctx context.Context, req *receiptiqpb.DeleteProjectRequest) (*receiptiqpb.DeleteProjectResponse, error) {
	id, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err, "project")
	}
	return &receiptiqpb.DeleteProjectResponse{}, nil
}

func (s *ProjectServer) ProcessProject(ctx context.Context, req *receiptiqpb.ProcessProjectRequest) (*receiptiqpb.ProcessProjectResponse, error) {
	id, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err, "project")
	}
	res, err := s.processor.ProcessProject(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrEmptySchema) {
			return nil, common.FailedPreconditionError(err.Error())
		}
		return nil, common.InternalError(err.Error())
	}
	return &receiptiqpb.ProcessProjectResponse{
		Processed: int32(res.Processed),
		Failed:    int32(res.Failed),
		Skipped:   int32(res.Skipped),
	}, nil
}

func (s *ProjectServer) GetProjectData(ctx context.Context, req *receiptiqpb.GetProjectDataRequest) (*receiptiqpb.GetProjectDataResponse, error) {
	id, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	arena, err := s.fields.Arena(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	receipts, err := s.receipts.ListByProject(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}

	out := make([]*receiptiqpb.ReceiptData, 0, len(receipts))
	for _, r := range receipts {
		values, err := s.values.ListByReceipt(ctx, r.ID)
		if err != nil {
			return nil, mapRepoError(err, "receipt")
		}
		data := &receiptiqpb.ReceiptData{Receipt: toPBReceipt(r)}
		for _, v := range values {
			data.Values = append(data.Values, toPBValue(v, arena))
		}
		out = append(out, data)
	}
	return &receiptiqpb.GetProjectDataResponse{Receipts: out}, nil
}

func (s *ProjectServer) ExportProject(ctx context.Context, req *receiptiqpb.ExportProjectRequest) (*receiptiqpb.ExportProjectResponse, error) {
	id, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = "csv"
	}

	var content []byte
	switch format {
	case "csv":
		content, err = s.exporter.ExportCSV(ctx, id)
	case "xlsx":
		content, err = s.exporter.ExportXLSX(ctx, id)
	default:
		return nil, common.InvalidArgumentErrorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, common.InternalError(err.Error())
	}

	filename := fmt.Sprintf("project_%s_%s.%s", id, time.Now().UTC().Format("20060102_150405"), format)
	return &receiptiqpb.ExportProjectResponse{Content: content, Filename: filename}, nil
}
