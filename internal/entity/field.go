package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/constants"
)

// Field is a named, typed node in a project's extraction schema. Object and
// array fields own children; scalar fields are leaves. Parent is a nullable
// back-reference by id, never an owning pointer; the tree is materialized by
// BuildForest from the flat per-project field list.
type Field struct {
	ID          uuid.UUID           `json:"id"`
	ProjectID   uuid.UUID           `json:"project_id"`
	ParentID    *uuid.UUID          `json:"parent_id,omitempty"`
	Name        string              `json:"name"`
	Type        constants.FieldType `json:"type"`
	Description string              `json:"description,omitempty"`
	Children    []*Field            `json:"children,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// IsLeaf reports whether f holds a scalar value (no children by type).
func (f *Field) IsLeaf() bool {
	return !f.Type.IsContainer()
}

// BuildForest links a flat field list into top-level trees. Children are
// attached to their parents and each sibling set is sorted by name so the
// forest is deterministic regardless of query order.
func BuildForest(fields []*Field) []*Field {
	byID := make(map[uuid.UUID]*Field, len(fields))
	for _, f := range fields {
		f.Children = nil
		byID[f.ID] = f
	}
	var roots []*Field
	for _, f := range fields {
		if f.ParentID != nil {
			if p, ok := byID[*f.ParentID]; ok {
				p.Children = append(p.Children, f)
				continue
			}
		}
		roots = append(roots, f)
	}
	var sortSiblings func(fs []*Field)
	sortSiblings = func(fs []*Field) {
		sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
		for _, f := range fs {
			sortSiblings(f.Children)
		}
	}
	sortSiblings(roots)
	return roots
}

// Leaves returns every scalar field reachable from the given trees.
func Leaves(fields []*Field) []*Field {
	var out []*Field
	var walk func(fs []*Field)
	walk = func(fs []*Field) {
		for _, f := range fs {
			if f.IsLeaf() {
				out = append(out, f)
				continue
			}
			walk(f.Children)
		}
	}
	walk(fields)
	return out
}

// WouldCreateCycle reports whether reparenting fieldID under newParentID
// would make the field its own ancestor. fields maps every field in the
// project by id.
func WouldCreateCycle(fields map[uuid.UUID]*Field, fieldID, newParentID uuid.UUID) bool {
	if fieldID == newParentID {
		return true
	}
	seen := map[uuid.UUID]struct{}{}
	cur := newParentID
	for {
		if cur == fieldID {
			return true
		}
		if _, ok := seen[cur]; ok {
			// defensive: pre-existing cycle in the arena
			return true
		}
		seen[cur] = struct{}{}
		f, ok := fields[cur]
		if !ok || f.ParentID == nil {
			return false
		}
		cur = *f.ParentID
	}
}
