package models

import "time"

// Hostel is the single-row institution profile. HostelName feeds the
// ID card header.
type Hostel struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HostelName string `gorm:"size:100;not null" json:"hostel_name"`
	Address    string `gorm:"size:255" json:"address"`
	Phone      string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
