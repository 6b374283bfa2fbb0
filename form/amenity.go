package form

import (
	"fmt"
	"html"
	"html/template"
)

type AmenityInfo struct {
	Icon        string
	Label       string
	Description string
}

var amenityOrder = []string{
	"wifi", "air_conditioning", "coffee", "kitchen", "meeting_rooms", "phone_booths",
	"standing_desks", "printer", "lockers", "parking", "bike_storage", "showers",
	"pool", "gym", "laundry", "rooftop", "pet_friendly", "24_7_access",
}

var amenities = map[string]AmenityInfo{
	"wifi":             {"📶", "High-speed WiFi", "Fast and reliable internet for calls and uploads"},
	"air_conditioning": {"❄️", "Air Conditioning", "Climate controlled working areas"},
	"coffee":           {"☕", "Coffee & Tea", "Free-flow coffee, tea and water"},
	"kitchen":          {"🍳", "Kitchen", "Shared kitchen with fridge and microwave"},
	"meeting_rooms":    {"👥", "Meeting Rooms", "Bookable rooms for team meetings"},
	"phone_booths":     {"📞", "Phone Booths", "Quiet booths for private calls"},
	"standing_desks":   {"🧍", "Standing Desks", "Height adjustable desks"},
	"printer":          {"🖨️", "Printer & Scanner", "Printing, copying and scanning"},
	"lockers":          {"🔐", "Lockers", "Personal lockers for your belongings"},
	"parking":          {"🅿️", "Parking", "On-site parking for cars and scooters"},
	"bike_storage":     {"🚲", "Bike Storage", "Secure storage for bicycles"},
	"showers":          {"🚿", "Showers", "Shower facilities for members"},
	"pool":             {"🏊", "Swimming Pool", "Pool access for members and guests"},
	"gym":              {"🏋️", "Gym", "Fitness equipment on site"},
	"laundry":          {"🧺", "Laundry", "Washing machines and laundry service"},
	"rooftop":          {"🌇", "Rooftop", "Rooftop terrace for breaks and events"},
	"pet_friendly":     {"🐾", "Pet Friendly", "Well-behaved pets are welcome"},
	"24_7_access":      {"🕐", "24/7 Access", "Work any time of day or night"},
}

// AmenityNames is the amenity vocabulary in display order.
func AmenityNames() []string {
	return append([]string{}, amenityOrder...)
}

func Amenity(name string) (AmenityInfo, bool) {
	a, ok := amenities[name]
	return a, ok
}

// AmenityBadge renders a known amenity with its icon and description, and
// anything else as plain text.
func AmenityBadge(name string) template.HTML {
	a, ok := Amenity(name)
	if !ok {
		return template.HTML(html.EscapeString(name))
	}
	return template.HTML(fmt.Sprintf(
		`<span class="amenity" title="%s"><span class="amenity-icon">%s</span> %s</span>`,
		html.EscapeString(a.Description), html.EscapeString(a.Icon), html.EscapeString(a.Label),
	))
}
