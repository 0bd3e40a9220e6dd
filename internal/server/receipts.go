package server

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/receiptiq/receiptiq/constants"
	receiptiqpb "github.com/receiptiq/receiptiq/gen/proto/receiptiq/v1"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/pipeline"
	"github.com/receiptiq/receiptiq/internal/repository"
	"github.com/receiptiq/receiptiq/internal/storage"
)

// ReceiptServer implements receiptiq.v1.ReceiptService.
type ReceiptServer struct {
	receiptiqpb.UnimplementedReceiptServiceServer
	receipts  repository.ReceiptRepository
	projects  repository.ProjectRepository
	fields    repository.FieldRepository
	values    repository.DataValueRepository
	store     storage.ObjectStore
	processor *pipeline.Processor
	logger    *slog.Logger
}

func NewReceiptServer(
	receipts repository.ReceiptRepository,
	projects repository.ProjectRepository,
	fields repository.FieldRepository,
	values repository.DataValueRepository,
	store storage.ObjectStore,
	processor *pipeline.Processor,
	logger *slog.Logger,
) *ReceiptServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptServer{
		receipts:  receipts,
		projects:  projects,
		fields:    fields,
		values:    values,
		store:     store,
		processor: processor,
		logger:    logger,
	}
}

func (s *ReceiptServer) UploadReceipt(ctx context.Context, req *receiptiqpb.UploadReceiptRequest) (*receiptiqpb.UploadReceiptResponse, error) {
	projectID, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		return nil, common.InvalidArgumentError("file_name is required")
	}
	mimeType := strings.ToLower(strings.TrimSpace(req.GetMimeType()))
	if _, ok := constants.AllowedMimeTypes[mimeType]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported mime type %q", mimeType)
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	if len(content) > constants.MaxUploadBytes {
		return nil, common.InvalidArgumentErrorf("content exceeds %d bytes", constants.MaxUploadBytes)
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, mapRepoError(err, "project")
	}

	key, err := s.store.Upload(ctx, projectID.String(), fileName, bytes.NewReader(content))
	if err != nil {
		return nil, common.InternalErrorf("store document: %v", err)
	}

	rec, err := s.receipts.Create(ctx, &repository.CreateReceiptRequest{
		ProjectID: projectID,
		FilePath:  key,
		FileName:  fileName,
		MimeType:  mimeType,
	})
	if err != nil {
		// the object is orphaned if this fails; best effort removal
		if derr := s.store.Delete(ctx, key); derr != nil {
			s.logger.Warn("orphaned object cleanup failed", "key", key, "error", derr)
		}
		return nil, mapRepoError(err, "receipt")
	}

	s.logger.Info("receipt uploaded",
		"receipt_id", rec.ID,
		"project_id", projectID,
		"file", fileName,
		"bytes", len(content),
	)
	return &receiptiqpb.UploadReceiptResponse{Receipt: toPBReceipt(rec)}, nil
}

func (s *ReceiptServer) GetReceipt(ctx context.Context, req *receiptiqpb.GetReceiptRequest) (*receiptiqpb.GetReceiptResponse, error) {
	id, err := parseUUID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	arena, err := s.fields.Arena(ctx, rec.ProjectID)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	values, err := s.values.ListByReceipt(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}

	resp := &receiptiqpb.GetReceiptResponse{Receipt: toPBReceipt(rec)}
	for _, v := range values {
		resp.Values = append(resp.Values, toPBValue(v, arena))
	}
	return resp, nil
}

func (s *ReceiptServer) ListReceipts(ctx context.Context, req *receiptiqpb.ListReceiptsRequest) (*receiptiqpb.ListReceiptsResponse, error) {
	projectID, err := parseUUID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	recs, err := s.receipts.ListByProject(ctx, projectID)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	out := make([]*receiptiqpb.Receipt, len(recs))
	for i, rec := range recs {
		out[i] = toPBReceipt(rec)
	}
	return &receiptiqpb.ListReceiptsResponse{Receipts: out}, nil
}

func (s *ReceiptServer) DeleteReceipt(ctx context.Context, req *receiptiqpb.DeleteReceiptRequest) (*receiptiqpb.DeleteReceiptResponse, error) {
	id, err := parseUUID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	if err := s.receipts.Delete(ctx, id); err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	if err := s.store.Delete(ctx, rec.FilePath); err != nil {
		s.logger.Warn("failed to delete stored object", "receipt_id", id, "key", rec.FilePath, "error", err)
	}
	return &receiptiqpb.DeleteReceiptResponse{}, nil
}

func (s *ReceiptServer) UpdateReceiptStatus(ctx context.Context, req *receiptiqpb.UpdateReceiptStatusRequest) (*receiptiqpb.UpdateReceiptStatusResponse, error) {
	id, err := parseUUID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	if !constants.IsValidReceiptStatus(req.GetStatus()) {
		return nil, common.InvalidArgumentErrorf("invalid status %q", req.GetStatus())
	}
	if err := s.receipts.SetStatus(ctx, id, constants.ReceiptStatus(req.GetStatus())); err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	return &receiptiqpb.UpdateReceiptStatusResponse{Receipt: toPBReceipt(rec)}, nil
}

func (s *ReceiptServer) ProcessReceipt(ctx context.Context, req *receiptiqpb.ProcessReceiptRequest) (*receiptiqpb.ProcessReceiptResponse, error) {
	id, err := parseUUID(req.GetReceiptId(), "receipt_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	if !rec.Status.Eligible() {
		return nil, common.FailedPreconditionErrorf("receipt is %s", rec.Status)
	}

	values, err := s.processor.ProcessReceipt(ctx, rec)
	if err != nil {
		// the receipt was already marked failed with the cause
		rec, gerr := s.receipts.GetByID(ctx, id)
		if gerr != nil {
			return nil, common.InternalError(err.Error())
		}
		return &receiptiqpb.ProcessReceiptResponse{Receipt: toPBReceipt(rec)}, nil
	}

	arena, err := s.fields.Arena(ctx, rec.ProjectID)
	if err != nil {
		return nil, mapRepoError(err, "project")
	}
	rec, err = s.receipts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "receipt")
	}
	resp := &receiptiqpb.ProcessReceiptResponse{Receipt: toPBReceipt(rec)}
	for _, v := range values {
		resp.Values = append(resp.Values, toPBValue(v, arena))
	}
	return resp, nil
}
