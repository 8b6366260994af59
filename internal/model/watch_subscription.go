package model

import "time"

// WatchSubscription holds a browser push subscription that watches rooms
// and gets notified when one of them becomes free again.
type WatchSubscription struct {
	Endpoint  string    `gorm:"primaryKey" json:"endpoint"`
	P256DH    string    `gorm:"column:p256dh;not null" json:"p256dh"`
	Auth      string    `gorm:"not null" json:"auth"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`

	// Associations
	Rooms []*Room `gorm:"many2many:subscription_room_mapping;" json:"-"`
}
