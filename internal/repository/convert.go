package repository

import (
	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/gen/ent"
	"github.com/receiptiq/receiptiq/internal/entity"
)

func toProject(p *ent.Project) *entity.Project {
	return &entity.Project{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toField(f *ent.Field) *entity.Field {
	return &entity.Field{
		ID:          f.ID,
		ProjectID:   f.ProjectID,
		ParentID:    f.ParentID,
		Name:        f.Name,
		Type:        constants.FieldType(f.Type),
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toReceipt(r *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		FilePath:     r.FilePath,
		FileName:     r.FileName,
		MimeType:     r.MimeType,
		Status:       constants.ReceiptStatus(r.Status),
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDataValue(v *ent.DataValue) *entity.DataValue {
	return &entity.DataValue{
		ID:        v.ID,
		FieldID:   v.FieldID,
		ReceiptID: v.ReceiptID,
		Row:       v.Row,
		Value:     v.Value,
		Box: entity.BoundingBox{
			X:      v.X,
			Y:      v.Y,
			Width:  v.Width,
			Height: v.Height,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
