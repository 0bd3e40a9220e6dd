// Package pipeline runs the receipt extraction lifecycle: stage the
// document, derive text and tokens, call the LLM with the compiled
// contract, and flatten the result into stored values.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/entity"
	"github.com/receiptiq/receiptiq/internal/flatten"
	"github.com/receiptiq/receiptiq/internal/llm"
	"github.com/receiptiq/receiptiq/internal/storage"
)

// ReceiptStore is the slice of the receipt repository the pipeline needs.
type ReceiptStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Receipt, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ReceiptStatus) error
	SetFailed(ctx context.Context, id uuid.UUID, message string) error
}

// FieldSource loads a project's field forest.
type FieldSource interface {
	ListForest(ctx context.Context, projectID uuid.UUID) ([]*entity.Field, error)
}

// TextExtractor derives text and positioned tokens from a staged document.
type TextExtractor interface {
	Extract(ctx context.Context, path, mimeType string) (doctext.Document, error)
}

type Processor struct {
	receipts  ReceiptStore
	fields    FieldSource
	store     storage.ObjectStore
	doctext   TextExtractor
	extractor llm.Extractor
	flattener *flatten.Flattener
	logger    *slog.Logger
}

func NewProcessor(
	receipts ReceiptStore,
	fields FieldSource,
	store storage.ObjectStore,
	text TextExtractor,
	extractor llm.Extractor,
	flattener *flatten.Flattener,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		receipts:  receipts,
		fields:    fields,
		store:     store,
		doctext:   text,
		extractor: extractor,
		flattener: flattener,
		logger:    logger,
	}
}

// ProcessReceipt runs the whole pipeline for one receipt. The processing
// status is persisted before any I/O so a crash mid-extraction leaves a
// durable marker. On any failure the receipt is marked failed with a
// truncated message and the error is returned to the caller.
func (p *Processor) ProcessReceipt(ctx context.Context, receipt *entity.Receipt) ([]*entity.DataValue, error) {
	start := time.Now()
	p.logger.Info("pipeline.receipt.start", "receipt_id", receipt.ID, "project_id", receipt.ProjectID)

	fields, err := p.fields.ListForest(ctx, receipt.ProjectID)
	if err != nil {
		return nil, p.fail(ctx, receipt, fmt.Errorf("load fields: %w", err))
	}
	if len(fields) == 0 {
		return nil, p.fail(ctx, receipt, common.ErrEmptySchema)
	}

	if err := p.receipts.SetStatus(ctx, receipt.ID, constants.StatusProcessing); err != nil {
		return nil, fmt.Errorf("mark processing: %w", err)
	}

	values, err := p.run(ctx, receipt, fields)
	if err != nil {
		return nil, p.fail(ctx, receipt, err)
	}

	if err := p.receipts.SetStatus(ctx, receipt.ID, constants.StatusCompleted); err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}
	p.logger.Info("pipeline.receipt.done",
		"receipt_id", receipt.ID,
		"values", len(values),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return values, nil
}

func (p *Processor) run(ctx context.Context, receipt *entity.Receipt, fields []*entity.Field) ([]*entity.DataValue, error) {
	staged, cleanup, err := p.stage(ctx, receipt)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	doc, err := p.doctext.Extract(ctx, staged, receipt.MimeType)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		Fields:   fields,
		MimeType: receipt.MimeType,
		Text:     doc.Text,
		Tokens:   doc.Tokens,
	}
	if url, err := p.store.GetURL(ctx, receipt.FilePath); err == nil {
		req.DocumentURL = url
	} else {
		p.logger.Warn("pipeline.receipt.no_url", "receipt_id", receipt.ID, "error", err)
	}

	result, _, err := p.extractor.Extract(ctx, req)
	if err != nil {
		return nil, err
	}

	return p.flattener.Flatten(ctx, receipt.ID, fields, result)
}

// stage downloads the document to a temp location for the text extractor.
// The staged copy is removed by the returned cleanup regardless of outcome.
func (p *Processor) stage(ctx context.Context, receipt *entity.Receipt) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "riq-stage-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			p.logger.Warn("pipeline.stage.cleanup_failed", "path", tmpDir, "error", err)
		}
	}
	local := filepath.Join(tmpDir, filepath.Base(receipt.FileName))
	if err := p.store.Download(ctx, receipt.FilePath, local); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("stage document: %w", err)
	}
	return local, cleanup, nil
}

func (p *Processor) fail(ctx context.Context, receipt *entity.Receipt, cause error) error {
	p.logger.Error("pipeline.receipt.failed", "receipt_id", receipt.ID, "error", cause)
	if err := p.receipts.SetFailed(ctx, receipt.ID, cause.Error()); err != nil {
		p.logger.Error("pipeline.receipt.mark_failed_error", "receipt_id", receipt.ID, "error", err)
	}
	return cause
}

// ProjectResult summarizes one bulk run.
type ProjectResult struct {
	Processed int
	Failed    int
	Skipped   int
}

// ProcessProject runs every eligible receipt in the project sequentially.
// Receipts already in processing are skipped to avoid re-entrancy on an
// in-flight receipt; completed and failed ones are reprocessed. A failing
// receipt is recorded and the rest of the batch continues.
func (p *Processor) ProcessProject(ctx context.Context, projectID uuid.UUID) (ProjectResult, error) {
	receipts, err := p.receipts.ListByProject(ctx, projectID)
	if err != nil {
		return ProjectResult{}, fmt.Errorf("list receipts: %w", err)
	}

	var res ProjectResult
	for _, r := range receipts {
		if !r.Status.Eligible() {
			res.Skipped++
			continue
		}
		if _, err := p.ProcessReceipt(ctx, r); err != nil {
			res.Failed++
			continue
		}
		res.Processed++
	}
	p.logger.Info("pipeline.project.done",
		"project_id", projectID,
		"processed", res.Processed,
		"failed", res.Failed,
		"skipped", res.Skipped,
	)
	return res, nil
}
