package domain

// User is the signed-in identity as seen by the core
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
	CreatedAt   int64  `json:"createdAt"` // epoch millis
}

// UserPreferences is the settings snapshot. Each field is stored as its own key.
type UserPreferences struct {
	DarkMode             bool   `json:"darkMode"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	ShowNutritionInfo    bool   `json:"showNutritionInfo"`
	LanguageCode         string `json:"languageCode"`
	IsFirstLaunch        bool   `json:"isFirstLaunch"`
	BiometricEnabled     bool   `json:"biometricEnabled"`
}

// DefaultUserPreferences holds the values used for absent keys
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		DarkMode:             false,
		NotificationsEnabled: true,
		ShowNutritionInfo:    true,
		LanguageCode:         LanguageEnglish,
		IsFirstLaunch:        true,
		BiometricEnabled:     false,
	}
}

// Supported language codes
const (
	LanguageEnglish   = "en"
	LanguageAfrikaans = "af"
	LanguageZulu      = "zu"
)
