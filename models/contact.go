package models

import "time"

// Contact is an inquiry submitted through the public contact form. Subject and
// Message are stored in their server-composed form; Read is flipped by an
// explicit admin action and never reset.
type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Subject     string    `gorm:"size:512" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	Read        bool      `gorm:"default:false" json:"read"`
}
