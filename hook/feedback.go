package hook

import (
	"context"

	"nomad_admin/model"

	"gorm.io/gorm"
)

// Feedback is read-only apart from deletion.
type Feedback struct {
	*State
	rows *crud[model.Feedback]
}

func NewFeedback(db *gorm.DB) *Feedback {
	rows := newCrud[model.Feedback](db, nil, "", "created_at desc")
	return &Feedback{State: rows.State, rows: rows}
}

func (h *Feedback) List(ctx context.Context) []model.Feedback { return h.rows.List(ctx) }

func (h *Feedback) Get(ctx context.Context, id string) *model.Feedback { return h.rows.Get(ctx, id) }

func (h *Feedback) Delete(ctx context.Context, id string) bool { return h.rows.Delete(ctx, id) }

func (h *Feedback) Count(ctx context.Context) int64 { return h.rows.Count(ctx) }
