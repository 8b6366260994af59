package model

import "time"

// Room represents a bookable coworking room.
type Room struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Capacity  int       `gorm:"not null;check:capacity >= 0" json:"capacity"`
	Location  string    `gorm:"size:256" json:"location"`
	Equipment string    `gorm:"size:512" json:"equipment"`
	Status    string    `gorm:"size:32;not null;default:available" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	Reservations []Reservation `gorm:"foreignKey:RoomID" json:"-"`
}
