package models

import "github.com/julianstephens/myday/internal/constants"

// Settings represents application-wide settings persisted next to the entries
type Settings struct {
	Theme    string `json:"theme"`    // palette name, e.g. "moon-night"
	Timezone string `json:"timezone"` // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
}

// DefaultSettings returns the settings used before anything has been saved.
func DefaultSettings() Settings {
	return Settings{
		Theme:    constants.DefaultTheme,
		Timezone: constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings applies default values to missing or unknown settings.
func ApplyDefaultSettings(settings *Settings) {
	if _, ok := Themes[settings.Theme]; !ok {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
