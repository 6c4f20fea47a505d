// Package dto defines the request bodies for the profile endpoints.
package dto

// SettingsUpdateReq carries a partial update of the caller's settings.
// Absent fields are left unchanged.
type SettingsUpdateReq struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	PrivacyLevel         *string `json:"privacy_level" binding:"omitempty,max=50"`
	Language             *string `json:"language" binding:"omitempty,max=50"`
	Timezone             *string `json:"timezone" binding:"omitempty,max=100"`
}

// AddressUpdateReq carries a partial update of the caller's address.
// Absent fields are left unchanged.
type AddressUpdateReq struct {
	Country *string  `json:"country" binding:"omitempty,max=100"`
	City    *string  `json:"city" binding:"omitempty,max=100"`
	Address *string  `json:"address" binding:"omitempty,max=255"`
	Lat     *float64 `json:"lat" binding:"omitempty,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" binding:"omitempty,gte=-180,lte=180"`
}
