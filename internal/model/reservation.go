package model

import "time"

// Reservation books a room for the half-open window [StartTime, EndTime).
// Two reservations for the same room conflict when their windows intersect;
// windows that only share an endpoint do not.
type Reservation struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	PublicID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"publicId"`
	Responsible string    `gorm:"size:128;not null" json:"responsible" validate:"required"`
	Document    string    `gorm:"size:32;not null;index" json:"document" validate:"required"`
	Email       string    `gorm:"size:128;not null" json:"email" validate:"required,email"`
	StartTime   time.Time `gorm:"not null;index" json:"startTime" validate:"required"`
	EndTime     time.Time `gorm:"not null" json:"endTime" validate:"required"`
	Purpose     string    `gorm:"size:256" json:"purpose,omitempty"`
	RoomID      int64     `gorm:"not null;index" json:"roomId" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
