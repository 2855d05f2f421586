package models

import "time"

// Post is a blog entry. Content is HTML authored in the admin panel and
// stored verbatim; only rows with Published set are visible to the public
// endpoints.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:64" json:"category"`
	Image       string    `gorm:"size:255" json:"image"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	// No gorm default tag: gorm drops zero-value fields carrying one from the
	// INSERT, which would silently publish every draft. Callers set the flag
	// explicitly.
	Published bool `json:"published"`
}
