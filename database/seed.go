package database

import (
	"time"

	"nomad_admin/model"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func ptr[T any](v T) *T { return &v }

// SeedData inserts demo rows once, keyed by their natural names.
func SeedData(db *gorm.DB) {
	spaces := []model.Space{
		{
			Name: "Nomad Hub Ubud", SpaceType: model.SpaceTypeCoworking,
			ShortDescription: "Jungle-view desks ten minutes from the market",
			Location:         "Ubud, Bali", Address: "Jl. Raya Ubud No. 10",
			Latitude: ptr(-8.5069), Longitude: ptr(115.2625),
			OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 80, PriceFrom: 12,
			AllowBooking: true, WifiSpeedMbps: 200,
			Amenities: model.Tags{"wifi", "coffee", "meeting_rooms"},
			Options:   model.Tags{"hot_desk", "private_office"},
			Tags:      model.Tags{"coworking", "quiet"},
			Status:    model.StatusPublished,
		},
		{
			Name: "Lakeside Coliving Pokhara", SpaceType: model.SpaceTypeColiving,
			ShortDescription: "Rooms and a shared office by Phewa Lake",
			Location:         "Pokhara, Nepal", Capacity: 24, PriceFrom: 18,
			AllowBooking: true, WifiSpeedMbps: 60,
			Amenities: model.Tags{"wifi", "kitchen", "laundry"},
			Options:   model.Tags{"dedicated_desk"},
			Tags:      model.Tags{"coliving", "mountain"},
			Status:    model.StatusDraft,
		},
	}
	for _, space := range spaces {
		if err := db.Where(model.Space{Name: space.Name}).FirstOrCreate(&space).Error; err != nil {
			log.Warnf("failed to seed space %s: %v", space.Name, err)
		}
	}

	events := []model.Event{
		{
			Title: "Digital Nomad Meetup", Description: "Monthly drinks and lightning talks",
			StartDate: parseDate("2026-11-14"), Location: "Ubud, Bali", Venue: "Nomad Hub Ubud",
			Capacity: 50, Status: model.StatusPublished, Tags: model.Tags{"meetup", "networking"},
		},
	}
	for _, event := range events {
		if err := db.Where(model.Event{Title: event.Title}).FirstOrCreate(&event).Error; err != nil {
			log.Warnf("failed to seed event %s: %v", event.Title, err)
		}
	}

	feedback := []model.Feedback{
		{Name: "Ana", Country: "Portugal", Message: "The map view would be great on mobile."},
	}
	for _, f := range feedback {
		if err := db.Where(model.Feedback{Name: f.Name, Message: f.Message}).FirstOrCreate(&f).Error; err != nil {
			log.Warnf("failed to seed feedback: %v", err)
		}
	}
}
