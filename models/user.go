package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email" gorm:"not null"`
	Password string `json:"-" gorm:"not null"` // Store hashed password
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`

	Registrations []Registration `json:"-"`
}
