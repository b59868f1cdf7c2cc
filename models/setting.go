package models

// Setting is one key/value row of the settings table. Settings are always
// upserted, never plain-inserted, so re-initialization cannot fail on
// existing keys.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Well-known setting keys.
const (
	SettingTranslation = "translation"
	SettingTheme       = "theme"
	SettingViewMode    = "viewMode"
)

// Defaults applied when a key is absent from the settings table.
const (
	DefaultTranslationID = "de4e12af7f28f599-02"
	DefaultViewMode      = "byBook"

	ThemeLight = "light"
	ThemeDark  = "dark"
)
