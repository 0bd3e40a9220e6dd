// extract runs the whole pipeline once against a single document: load a
// schema definition, extract, and print the flattened values as CSV. State
// lives in an in-memory database, so nothing persists past the run.
//
// Usage:
//
//	extract -schema schema.json -doc receipt.pdf [-mode text] [-out values.csv]
//
// The schema file is a JSON array of field definitions:
//
//	[{"name": "vendor", "type": "string", "description": "merchant name"},
//	 {"name": "items", "type": "array", "children": [
//	   {"name": "price", "type": "number"}]}]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/export"
	"github.com/receiptiq/receiptiq/internal/flatten"
	"github.com/receiptiq/receiptiq/internal/llm/openai"
	"github.com/receiptiq/receiptiq/internal/pipeline"
	"github.com/receiptiq/receiptiq/internal/repository"
	"github.com/receiptiq/receiptiq/internal/storage"
)

type fieldDef struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Children    []fieldDef `json:"children"`
}

func main() {
	schemaPath := flag.String("schema", "", "path to the schema definition JSON (required)")
	docPath := flag.String("doc", "", "path to the document to extract (required)")
	mode := flag.String("mode", "", "extraction mode: document or text (default from EXTRACTION_MODE)")
	outPath := flag.String("out", "", "write CSV here instead of stdout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if *schemaPath == "" || *docPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *schemaPath, *docPath, *mode, *outPath, logger); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, schemaPath, docPath, mode, outPath string, logger *slog.Logger) error {
	cfg := common.LoadConfig()
	if mode != "" {
		cfg.LLM.Mode = mode
	}
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	defs, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	client, err := repository.OpenSQLiteInMemory(ctx, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer client.Close()

	projects := repository.NewProjectRepository(client, logger)
	fields := repository.NewFieldRepository(client, logger)
	receipts := repository.NewReceiptRepository(client, logger)
	values := repository.NewDataValueRepository(client, logger)

	project, err := projects.Create(ctx, &repository.CreateProjectRequest{
		OwnerID: uuid.New(),
		Name:    "extract",
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	if err := createFields(ctx, fields, project.ID, nil, defs); err != nil {
		return err
	}

	stageDir, err := os.MkdirTemp("", "riq-extract-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(stageDir)

	store, err := storage.NewFSStore(stageDir, logger)
	if err != nil {
		return err
	}
	doc, err := os.Open(docPath)
	if err != nil {
		return err
	}
	key, err := store.Upload(ctx, project.ID.String(), filepath.Base(docPath), doc)
	doc.Close()
	if err != nil {
		return fmt.Errorf("stage document: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(docPath))
	if _, ok := constants.AllowedMimeTypes[mimeType]; !ok {
		return fmt.Errorf("unsupported document type %q", filepath.Ext(docPath))
	}
	receipt, err := receipts.Create(ctx, &repository.CreateReceiptRequest{
		ProjectID: project.ID,
		FilePath:  key,
		FileName:  filepath.Base(docPath),
		MimeType:  mimeType,
	})
	if err != nil {
		return fmt.Errorf("create receipt: %w", err)
	}

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Mode:        cfg.LLM.Mode,
	}, logger)
	text := doctext.NewExtractor(doctext.Config{
		Pdftotext:   cfg.DocText.Pdftotext,
		Pdftoppm:    cfg.DocText.Pdftoppm,
		Tesseract:   cfg.DocText.Tesseract,
		Magick:      cfg.DocText.Magick,
		TessdataDir: cfg.DocText.TessdataDir,
		DPI:         cfg.DocText.DPI,
		MaxPages:    cfg.DocText.MaxPages,
	}, logger)

	processor := pipeline.NewProcessor(receipts, fields, store, text, extractor, flatten.New(values, logger), logger)
	if _, err := processor.ProcessReceipt(ctx, receipt); err != nil {
		return err
	}

	csvBytes, err := export.NewService(receipts, values, fields, logger).ExportCSV(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("render csv: %w", err)
	}
	if outPath == "" {
		_, err = os.Stdout.Write(csvBytes)
		return err
	}
	return os.WriteFile(outPath, csvBytes, 0o644)
}

func loadSchema(path string) ([]fieldDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	var defs []fieldDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("schema defines no fields")
	}
	return defs, nil
}

func createFields(ctx context.Context, repo repository.FieldRepository, projectID uuid.UUID, parentID *uuid.UUID, defs []fieldDef) error {
	for _, def := range defs {
		f, err := repo.Create(ctx, &repository.CreateFieldRequest{
			ProjectID:   projectID,
			ParentID:    parentID,
			Name:        def.Name,
			Type:        constants.FieldType(def.Type),
			Description: def.Description,
		})
		if err != nil {
			return fmt.Errorf("create field %q: %w", def.Name, err)
		}
		if len(def.Children) > 0 {
			if err := createFields(ctx, repo, projectID, &f.ID, def.Children); err != nil {
				return err
			}
		}
	}
	return nil
}
