package models

import "time"

// Resident is one hostel occupant. Records are created once and never
// mutated; RegistrationNo is the business key and is stored uppercase.
type Resident struct {
	ID             uint      `gorm:"primaryKey"                   json:"id"`
	RegistrationNo string    `gorm:"size:12;uniqueIndex;not null" json:"registration_no"`
	FirstName      string    `gorm:"size:50;not null"             json:"first_name"`
	LastName       string    `gorm:"size:50;not null"             json:"last_name"`
	FatherName     string    `gorm:"size:50;not null"             json:"father_name"`
	Department     string    `gorm:"size:50;not null"             json:"department"`
	RoomNo         string    `gorm:"size:10;not null"             json:"room_no"`
	Phone          string    `gorm:"size:15;not null"             json:"phone"`
	Email          string    `gorm:"size:100"                     json:"email"`
	Address        string    `gorm:"type:text"                    json:"address"`
	PhotoPath      string    `gorm:"size:255;not null"            json:"photo_path"`
	JoinDate       string    `gorm:"size:10;not null"             json:"join_date"`   // YYYY-MM-DD
	ExpiryDate     string    `gorm:"size:10;not null"             json:"expiry_date"` // derived at registration, never recomputed
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName joins first and last name the way the card prints it.
func (r *Resident) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ResidentSummary is the listing projection. Photo and address are
// deliberately left out of listings.
type ResidentSummary struct {
	RegistrationNo string `json:"registration_no"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Department     string `json:"department"`
	RoomNo         string `json:"room_no"`
}
