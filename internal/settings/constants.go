package settings

// Preference keys
const (
	KeyDarkMode             = "dark_mode"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyShowNutritionInfo    = "show_nutrition_info"
	KeyLanguageCode         = "language_code"
	KeyIsFirstLaunch        = "is_first_launch"
	KeyBiometricEnabled     = "biometric_enabled"
)

// QuerySnapshot names the preferences live query
const QuerySnapshot = "settings.snapshot"

// Log messages
const (
	LogMsgPreferenceUpdated = "Preference updated"
	LogMsgPreferenceInvalid = "Stored preference is not a boolean, using default"
)
