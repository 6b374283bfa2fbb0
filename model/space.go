package model

import (
	"nomad_admin/form"

	"github.com/jinzhu/copier"
)

const (
	SpaceTypeCoworking     = "coworking_space"
	SpaceTypeCoworkingCafe = "coworking_cafe"
	SpaceTypeColiving      = "coliving_space"
)

type Space struct {
	DTO
	Name             string   `gorm:"not null;index" json:"name"`
	SpaceType        string   `gorm:"not null" json:"space_type"`
	ShortDescription string   `json:"short_description"`
	Content          string   `json:"content"`
	Location         string   `gorm:"not null" json:"location"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Amenities        Tags     `json:"amenities"`
	Options          Tags     `json:"options"`
	OpeningTime      string   `json:"opening_time"`
	ClosingTime      string   `json:"closing_time"`
	Capacity         int      `json:"capacity"`
	PriceFrom        float64  `json:"price_from"`
	AllowBooking     bool     `json:"allow_booking"`
	WifiSpeedMbps    int      `json:"wifi_speed_mbps"`
	WeatherCondition string   `json:"weather_condition"`
	ContactEmail     string   `json:"contact_email"`
	ContactPhone     string   `json:"contact_phone"`
	Website          string   `json:"website"`
	Instagram        string   `json:"instagram"`
	Facebook         string   `json:"facebook"`
	Whatsapp         string   `json:"whatsapp"`
	Status           string   `gorm:"not null;index" json:"status"`
	Tags             Tags     `json:"tags"`
	Image            *string  `json:"image"`

	Offers      []SpaceOffer      `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"offers,omitempty"`
	Attractions []SpaceAttraction `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"attractions,omitempty"`
	Images      []SpaceImage      `gorm:"foreignKey:SpaceID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

type SpaceInput struct {
	Name             string    `schema:"name" validate:"required" message:"Name is required"`
	SpaceType        string    `schema:"space_type" validate:"required,oneof=coworking_space coworking_cafe coliving_space"`
	ShortDescription string    `schema:"short_description" validate:"required" message:"Short description is required"`
	Content          string    `schema:"content"`
	Location         string    `schema:"location" validate:"required" message:"Location is required"`
	Address          string    `schema:"address"`
	Latitude         *float64  `schema:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64  `schema:"longitude" validate:"omitempty,longitude"`
	Amenities        []string  `schema:"amenities"`
	Options          []string  `schema:"options"`
	OpeningTime      string    `schema:"opening_time" validate:"omitempty,datetime=15:04"`
	ClosingTime      string    `schema:"closing_time" validate:"omitempty,datetime=15:04"`
	Capacity         int       `schema:"capacity" validate:"gte=0"`
	PriceFrom        float64   `schema:"price_from" validate:"gte=0"`
	AllowBooking     bool      `schema:"allow_booking"`
	WifiSpeedMbps    int       `schema:"wifi_speed_mbps" validate:"gte=0"`
	WeatherCondition string    `schema:"weather_condition"`
	ContactEmail     string    `schema:"contact_email" validate:"omitempty,email"`
	ContactPhone     string    `schema:"contact_phone"`
	Website          string    `schema:"website" validate:"omitempty,url"`
	Instagram        string    `schema:"instagram" validate:"omitempty,url"`
	Facebook         string    `schema:"facebook" validate:"omitempty,url"`
	Whatsapp         string    `schema:"whatsapp"`
	Status           string    `schema:"status" validate:"required,oneof=draft published archived"`
	Tags             []string  `schema:"tags"`
	ImageFile        form.File `schema:"image" validate:"-" file:"max=5242880,types=image/jpeg image/png image/webp"`
}

// Space builds a new row. The image path is set by the caller after upload.
func (in SpaceInput) Space() (Space, error) {
	var s Space
	if err := copier.Copy(&s, &in); err != nil {
		return s, err
	}
	s.Amenities = TagsOf(in.Amenities)
	s.Options = TagsOf(in.Options)
	s.Tags = TagsOf(in.Tags)
	return s, nil
}

// Changes lists the column updates of an edit.
func (in SpaceInput) Changes() map[string]any {
	return map[string]any{
		"name":              in.Name,
		"space_type":        in.SpaceType,
		"short_description": in.ShortDescription,
		"content":           in.Content,
		"location":          in.Location,
		"address":           in.Address,
		"latitude":          in.Latitude,
		"longitude":         in.Longitude,
		"amenities":         TagsOf(in.Amenities),
		"options":           TagsOf(in.Options),
		"opening_time":      in.OpeningTime,
		"closing_time":      in.ClosingTime,
		"capacity":          in.Capacity,
		"price_from":        in.PriceFrom,
		"allow_booking":     in.AllowBooking,
		"wifi_speed_mbps":   in.WifiSpeedMbps,
		"weather_condition": in.WeatherCondition,
		"contact_email":     in.ContactEmail,
		"contact_phone":     in.ContactPhone,
		"website":           in.Website,
		"instagram":         in.Instagram,
		"facebook":          in.Facebook,
		"whatsapp":          in.Whatsapp,
		"status":            in.Status,
		"tags":              TagsOf(in.Tags),
	}
}

type SpaceOffer struct {
	DTO
	SpaceID     string  `gorm:"type:varchar(36);not null;index" json:"space_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `gorm:"not null;default:USD" json:"currency"`
	Capacity    int     `json:"capacity"`
	Available   bool    `json:"available"`
}

type OfferInput struct {
	Name        string  `schema:"name" validate:"required" message:"Offer name is required"`
	Description string  `schema:"description"`
	Price       float64 `schema:"price" validate:"gte=0"`
	Currency    string  `schema:"currency" validate:"omitempty,oneof=USD EUR GBP IDR THB VND"`
	Capacity    int     `schema:"capacity" validate:"gte=0"`
	Available   bool    `schema:"available"`
}

func (in OfferInput) Offer(spaceID string) SpaceOffer {
	o := SpaceOffer{SpaceID: spaceID}
	_ = copier.Copy(&o, &in)
	if o.Currency == "" {
		o.Currency = "USD"
	}
	return o
}

func (in OfferInput) Changes() map[string]any {
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	return map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"currency":    currency,
		"capacity":    in.Capacity,
		"available":   in.Available,
	}
}

type SpaceAttraction struct {
	DTO
	SpaceID     string   `gorm:"type:varchar(36);not null;index" json:"space_id"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	DistanceKm  float64  `gorm:"not null;default:0" json:"distance_km"`
	Category    string   `json:"category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Website     string   `json:"website"`
}

var AttractionCategories = []string{"lake", "temple", "viewpoint", "museum", "cafe", "restaurant", "beach", "mountain", "park", "other"}

type AttractionInput struct {
	Name        string   `schema:"name" validate:"required" message:"Attraction name is required"`
	Description string   `schema:"description"`
	DistanceKm  float64  `schema:"distance_km" validate:"gte=0"`
	Category    string   `schema:"category" validate:"omitempty,oneof=lake temple viewpoint museum cafe restaurant beach mountain park other"`
	Latitude    *float64 `schema:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `schema:"longitude" validate:"omitempty,longitude"`
	Website     string   `schema:"website" validate:"omitempty,url"`
}

func (in AttractionInput) Attraction(spaceID string) SpaceAttraction {
	a := SpaceAttraction{SpaceID: spaceID}
	_ = copier.Copy(&a, &in)
	return a
}

func (in AttractionInput) Changes() map[string]any {
	return map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"distance_km": in.DistanceKm,
		"category":    in.Category,
		"latitude":    in.Latitude,
		"longitude":   in.Longitude,
		"website":     in.Website,
	}
}

type SpaceImage struct {
	DTO
	SpaceID  string `gorm:"type:varchar(36);not null;index" json:"space_id"`
	Path     string `gorm:"not null" json:"path"`
	Alt      string `json:"alt"`
	Position int    `gorm:"not null;index" json:"position"`
}

// ImageAltInput is the alt text of a gallery image, set on upload or edited later.
type ImageAltInput struct {
	Alt string `schema:"alt" validate:"max=200"`
}

type SpaceImageInput struct {
	ImageFile form.File `schema:"image" validate:"-" file:"required,max=5242880,types=image/jpeg image/png image/webp"`
	ImageAltInput
}

type ReorderInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

func (s Space) Files() []string {
	if s.Image == nil {
		return nil
	}
	return []string{*s.Image}
}

func (i SpaceImage) Files() []string { return []string{i.Path} }
