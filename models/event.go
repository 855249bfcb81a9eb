package models

import "time"

// DateFormat is the wire format for event dates.
const DateFormat = "2006-01-02"

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Venue       string    `json:"venue" gorm:"not null"`
	Capacity    int       `json:"capacity" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	Date        time.Time `json:"-" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;default:General"`

	Registrations []Registration `json:"-"`
}
