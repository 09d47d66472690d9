package entity

// Setting is a single persisted preference value.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// Preference keys. LastBackup holds epoch millis; 0 means never backed up.
const (
	SettingName       = "name"
	SettingImage      = "image"
	SettingTheme      = "theme"
	SettingLastBackup = "last_backup"
)
