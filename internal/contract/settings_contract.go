package contract

type SettingsResponse struct {
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Theme      string `json:"theme"`
	LastBackup int64  `json:"lastBackup"`
}

type SettingsRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Image *string `json:"image" validate:"omitempty,max=200000"`
	Theme *string `json:"theme" validate:"omitempty,oneof=light dark"`
}

type LoginRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=12"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
