package packets

type EnrollRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectCityRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// Settings writes are whole snapshots, matching what GET returns; bool
// fields use pointers so an omitted field is rejected instead of silently
// read as false.
type UpdateNotificationSettingsRequest struct {
	IftarEnabled      *bool `json:"iftarEnabled" binding:"required"`
	SahurEnabled      *bool `json:"sahurEnabled" binding:"required"`
	DailyQuoteEnabled *bool `json:"dailyQuoteEnabled" binding:"required"`
	IftarLeadMinutes  int   `json:"iftarTime" binding:"min=0,max=720"`
	SahurLeadMinutes  int   `json:"sahurTime" binding:"min=0,max=720"`
}

type UpdateThemeSettingsRequest struct {
	IsDarkMode     *bool `json:"isDarkMode" binding:"required"`
	UseSystemTheme *bool `json:"useSystemTheme" binding:"required"`
}

type PermissionRequest struct {
	Granted *bool `json:"granted" binding:"required"`
}

type TestNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
