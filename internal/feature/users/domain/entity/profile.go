// Package entity defines the per-user profile extension records.
package entity

// UserSettings holds the caller's notification and locale preferences.
// One row per user, created lazily on the first write.
type UserSettings struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint `gorm:"index;not null"`
	NotificationsEnabled *bool
	PrivacyLevel         string `gorm:"size:50"`
	Language             string `gorm:"size:50"`
	Timezone             string `gorm:"size:100"`
}

// UserAddress is the caller's address. One row per user, created lazily
// on the first write.
type UserAddress struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"index;not null"`
	Country string `gorm:"size:100"`
	City    string `gorm:"size:100"`
	Address string `gorm:"size:255"`
	Lat     *float64
	Lng     *float64
}

// TableName keeps the singular table name of the existing schema.
func (UserAddress) TableName() string {
	return "user_address"
}
