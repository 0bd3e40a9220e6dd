// Package server exposes the gRPC surface: project and schema CRUD,
// receipt uploads, processing, and export.
package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/gen/ent"
	receiptiqpb "github.com/receiptiq/receiptiq/gen/proto/receiptiq/v1"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// mapRepoError translates repository failures into gRPC status errors.
func mapRepoError(err error, resource string) error {
	if ent.IsNotFound(err) {
		return common.NotFoundError(resource + " not found")
	}
	return common.InternalError(err.Error())
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", name)
	}
	return id, nil
}

func toPBProject(p *entity.Project) *receiptiqpb.Project {
	return &receiptiqpb.Project{
		Id:          p.ID.String(),
		OwnerId:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toPBField(f *entity.Field) *receiptiqpb.Field {
	out := &receiptiqpb.Field{
		Id:          f.ID.String(),
		ProjectId:   f.ProjectID.String(),
		Name:        f.Name,
		Type:        string(f.Type),
		Description: f.Description,
	}
	if f.ParentID != nil {
		out.ParentId = f.ParentID.String()
	}
	for _, c := range f.Children {
		out.Children = append(out.Children, toPBField(c))
	}
	return out
}

func toPBReceipt(r *entity.Receipt) *receiptiqpb.Receipt {
	out := &receiptiqpb.Receipt{
		Id:        r.ID.String(),
		ProjectId: r.ProjectID.String(),
		FileName:  r.FileName,
		MimeType:  r.MimeType,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339Nano),
	}
	if r.ErrorMessage != nil {
		out.ErrorMessage = *r.ErrorMessage
	}
	return out
}

func toPBValue(v *entity.DataValue, arena map[uuid.UUID]*entity.Field) *receiptiqpb.DataValue {
	return &receiptiqpb.DataValue{
		Id:            v.ID.String(),
		FieldId:       v.FieldID.String(),
		ReceiptId:     v.ReceiptID.String(),
		Row:           int32(v.Row),
		Value:         v.Value,
		QualifiedName: v.QualifiedName(arena),
		X:             v.Box.X,
		Y:             v.Box.Y,
		Width:         v.Box.Width,
		Height:        v.Box.Height,
	}
}
