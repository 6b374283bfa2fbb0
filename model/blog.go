package model

import (
	"time"

	"nomad_admin/form"

	"github.com/jinzhu/copier"
)

type BlogPost struct {
	DTO
	Name        string     `gorm:"not null" json:"name"`
	Content     string     `json:"content"`
	Status      string     `gorm:"not null;index" json:"status"`
	Tags        Tags       `json:"tags"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Image       *string    `json:"image"`
	Video       *string    `json:"video"`
	TimeToRead  int        `json:"time_to_read"`
	PublishedAt *time.Time `json:"published_at"`
}

func (BlogPost) TableName() string { return "blog" }

type BlogInput struct {
	Name       string    `schema:"name" validate:"required" message:"Name is required"`
	Content    string    `schema:"content" validate:"required,min=3"`
	Status     string    `schema:"status" validate:"required,oneof=draft published archived"`
	Tags       []string  `schema:"tags" validate:"min=1" message:"At least one tag is required"`
	Slug       string    `schema:"slug" validate:"omitempty,max=200"`
	ImageFile  form.File `schema:"image" validate:"-" file:"required,max=5242880,types=image/jpeg image/png image/webp,dims=200x200-4096x4096"`
	VideoFile  form.File `schema:"video" validate:"-" file:"max=52428800,types=video/mp4 video/webm video/quicktime"`
	TimeToRead int       `schema:"time_to_read" validate:"gte=0"`
}

func (in BlogInput) Post() (BlogPost, error) {
	var p BlogPost
	if err := copier.Copy(&p, &in); err != nil {
		return p, err
	}
	p.Tags = TagsOf(in.Tags)
	return p, nil
}

func (in BlogInput) Changes() map[string]any {
	return map[string]any{
		"name":         in.Name,
		"content":      in.Content,
		"status":       in.Status,
		"tags":         TagsOf(in.Tags),
		"slug":         in.Slug,
		"time_to_read": in.TimeToRead,
	}
}

func (p BlogPost) Files() []string {
	var files []string
	for _, f := range []*string{p.Image, p.Video} {
		if f != nil {
			files = append(files, *f)
		}
	}
	return files
}
