package models

type Registration struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_event"`
	EventID uint `json:"event_id" gorm:"not null;uniqueIndex:idx_user_event"`

	User  User  `json:"-"`
	Event Event `json:"-"`
}
