package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

type DTO struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DTO) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Tags is a tag-set column stored as a JSON array.
type Tags = datatypes.JSONSlice[string]

// TagsOf never returns nil so the column is written as [] instead of NULL.
func TagsOf(values []string) Tags {
	if values == nil {
		return Tags{}
	}
	return Tags(values)
}

type TokenClaim struct {
	Email string `json:"email"`
}

type LoginInput struct {
	Email    string `schema:"email" validate:"required,email" message:"Please enter a valid email"`
	Password string `schema:"password" validate:"required" message:"Password is required"`
}

func datePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
