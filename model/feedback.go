package model

// Feedback is submitted by visitors of the public site and is read-only here.
type Feedback struct {
	DTO
	Name    string `json:"name"`
	Country string `json:"country"`
	Message string `gorm:"type:text" json:"message"`
}

func (Feedback) TableName() string { return "feedback" }
