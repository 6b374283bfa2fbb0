package model

import (
	"time"

	"nomad_admin/form"

	"github.com/jinzhu/copier"
)

type Event struct {
	DTO
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	StartDate   time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    string     `gorm:"not null" json:"location"`
	Venue       string     `json:"venue"`
	Capacity    int        `json:"capacity"`
	Price       float64    `json:"price"`
	Status      string     `gorm:"not null;index" json:"status"`
	Tags        Tags       `json:"tags"`
	Image       *string    `json:"image"`
	IsOnline    bool       `json:"is_online"`
}

type EventInput struct {
	Title       string    `schema:"title" validate:"required" message:"Title is required"`
	Description string    `schema:"description" validate:"required" message:"Description is required"`
	Content     string    `schema:"content"`
	StartDate   time.Time `schema:"start_date" validate:"required" message:"Start date is required"`
	EndDate     time.Time `schema:"end_date" validate:"omitempty,gtefield=StartDate" message:"End date must be on or after the start date"`
	Location    string    `schema:"location" validate:"required" message:"Location is required"`
	Venue       string    `schema:"venue"`
	Capacity    int       `schema:"capacity" validate:"gte=0"`
	Price       float64   `schema:"price" validate:"gte=0"`
	Status      string    `schema:"status" validate:"required,oneof=draft published archived"`
	Tags        []string  `schema:"tags"`
	ImageFile   form.File `schema:"image" validate:"-" file:"max=5242880,types=image/jpeg image/png image/webp"`
	IsOnline    bool      `schema:"is_online"`
}

func (in EventInput) Event() (Event, error) {
	var e Event
	if err := copier.Copy(&e, &in); err != nil {
		return e, err
	}
	e.EndDate = datePtr(in.EndDate)
	e.Tags = TagsOf(in.Tags)
	return e, nil
}

func (in EventInput) Changes() map[string]any {
	return map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"content":     in.Content,
		"start_date":  in.StartDate,
		"end_date":    datePtr(in.EndDate),
		"location":    in.Location,
		"venue":       in.Venue,
		"capacity":    in.Capacity,
		"price":       in.Price,
		"status":      in.Status,
		"tags":        TagsOf(in.Tags),
		"is_online":   in.IsOnline,
	}
}

func (e Event) Files() []string {
	if e.Image == nil {
		return nil
	}
	return []string{*e.Image}
}
