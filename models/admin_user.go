package models

// AdminUser is a panel login. Exactly one row is seeded at first startup;
// there is no self-service registration. Password holds a bcrypt hash only.
type AdminUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
}
