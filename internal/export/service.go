// Package export renders a project's extracted values as flat tables: one
// row per receipt, one column per leaf field under its fully qualified
// name. Leaves under array fields get one column per observed row index.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

type ReceiptLister interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Receipt, error)
}

type ValueLister interface {
	ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]*entity.DataValue, error)
}

type FieldSource interface {
	ListForest(ctx context.Context, projectID uuid.UUID) ([]*entity.Field, error)
	Arena(ctx context.Context, projectID uuid.UUID) (map[uuid.UUID]*entity.Field, error)
}

type Service struct {
	receipts ReceiptLister
	values   ValueLister
	fields   FieldSource
	logger   *slog.Logger
}

func NewService(receipts ReceiptLister, values ValueLister, fields FieldSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{receipts: receipts, values: values, fields: fields, logger: logger}
}

// metaColumns lead every export before the per-field columns.
var metaColumns = []string{"receipt_id", "file_name", "status"}

// ExportCSV renders the project's values as CSV bytes.
func (s *Service) ExportCSV(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	start := time.Now()
	header, rows, err := s.buildTable(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"project_id", projectID.String(),
		"rows", len(rows),
		"columns", len(header),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportXLSX renders the same table as an XLSX workbook.
func (s *Service) ExportXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, error) {
	start := time.Now()
	header, rows, err := s.buildTable(ctx, projectID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Data"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIndex, _ := f.GetSheetIndex("Sheet1"); defIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for i, h := range header {
		write(i+1, 1, h)
	}
	for r, row := range rows {
		for c, v := range row {
			write(c+1, r+2, v)
		}
	}

	// widen the id column, keep the rest readable
	_ = f.SetColWidth(sheet, "A", "A", 38)
	if len(header) > 1 {
		last, _ := excelize.ColumnNumberToName(len(header))
		_ = f.SetColWidth(sheet, "B", last, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"project_id", projectID.String(),
		"rows", len(rows),
		"columns", len(header),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// buildTable computes the column set from the field forest plus the row
// indexes actually observed, then lays out one row per receipt.
func (s *Service) buildTable(ctx context.Context, projectID uuid.UUID) ([]string, [][]string, error) {
	forest, err := s.fields.ListForest(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("load fields: %w", err)
	}
	arena, err := s.fields.Arena(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("load field arena: %w", err)
	}
	receipts, err := s.receipts.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("load receipts: %w", err)
	}

	// cells[receipt][qualified name] plus the max row seen per array leaf
	cells := make(map[uuid.UUID]map[string]string, len(receipts))
	maxRow := map[uuid.UUID]int{}
	for _, r := range receipts {
		values, err := s.values.ListByReceipt(ctx, r.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("load values for receipt %s: %w", r.ID, err)
		}
		row := make(map[string]string, len(values))
		for _, v := range values {
			row[v.QualifiedName(arena)] = v.Value
			if v.Row > maxRow[v.FieldID] {
				maxRow[v.FieldID] = v.Row
			}
		}
		cells[r.ID] = row
	}

	header := append([]string{}, metaColumns...)
	header = append(header, fieldColumns(forest, arena, maxRow)...)

	rows := make([][]string, 0, len(receipts))
	for _, r := range receipts {
		row := make([]string, 0, len(header))
		row = append(row, r.ID.String(), r.FileName, string(r.Status))
		for _, col := range header[len(metaColumns):] {
			row = append(row, cells[r.ID][col])
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// fieldColumns walks the forest in display order. A leaf outside any array
// subtree contributes one column; a leaf under an array contributes one
// column per row index observed anywhere in the project, so every receipt
// shares the same column set.
func fieldColumns(forest []*entity.Field, arena map[uuid.UUID]*entity.Field, maxRow map[uuid.UUID]int) []string {
	var cols []string
	var walk func(fs []*entity.Field, underArray bool)
	walk = func(fs []*entity.Field, underArray bool) {
		for _, f := range fs {
			if !f.IsLeaf() {
				walk(f.Children, underArray || f.Type == constants.FieldTypeArray)
				continue
			}
			if underArray {
				for row := 1; row <= maxRow[f.ID]; row++ {
					cols = append(cols, qualifiedName(f, arena, row))
				}
				continue
			}
			cols = append(cols, qualifiedName(f, arena, 0))
		}
	}
	walk(forest, false)
	return cols
}

func qualifiedName(f *entity.Field, arena map[uuid.UUID]*entity.Field, row int) string {
	v := entity.DataValue{FieldID: f.ID, Row: row}
	return v.QualifiedName(arena)
}
