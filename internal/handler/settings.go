package handler

import (
	"context"
	"net/http"

	"github.com/osse101/NutriFind_Go/internal/settings"
)

// SettingsRequest is a partial settings update. Absent fields are left as
// they are.
type SettingsRequest struct {
	DarkMode             *bool   `json:"darkMode"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	ShowNutritionInfo    *bool   `json:"showNutritionInfo"`
	LanguageCode         *string `json:"languageCode" validate:"omitempty,max=35"`
	BiometricEnabled     *bool   `json:"biometricEnabled"`
}

// ToggleResponse reports the state a toggle left behind
type ToggleResponse struct {
	Enabled bool `json:"enabled"`
}

// HandleGetSettings returns the current preferences
func HandleGetSettings(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := svc.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, prefs)
	}
}

// HandleUpdateSettings applies a partial update. The language is checked
// before anything is written.
func HandleUpdateSettings(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
			return
		}
		if req.LanguageCode != nil {
			if _, err := settings.NormalizeLanguage(*req.LanguageCode); err != nil {
				respondServiceError(w, r, ErrMsgUpdateSettingsFailed, err)
				return
			}
		}

		ctx := r.Context()
		updates := []func(context.Context) error{}
		addBool := func(v *bool, set func(context.Context, bool) error) {
			if v != nil {
				updates = append(updates, func(ctx context.Context) error { return set(ctx, *v) })
			}
		}
		addBool(req.DarkMode, svc.UpdateDarkMode)
		addBool(req.NotificationsEnabled, svc.UpdateNotifications)
		addBool(req.ShowNutritionInfo, svc.UpdateShowNutritionInfo)
		addBool(req.BiometricEnabled, svc.UpdateBiometricEnabled)
		if req.LanguageCode != nil {
			code := *req.LanguageCode
			updates = append(updates, func(ctx context.Context) error { return svc.UpdateLanguage(ctx, code) })
		}

		for _, update := range updates {
			if err := update(ctx); err != nil {
				respondServiceError(w, r, ErrMsgUpdateSettingsFailed, err)
				return
			}
		}

		prefs, err := svc.Snapshot(ctx)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, prefs)
	}
}

// HandleFirstLaunchComplete records that onboarding has been shown
func HandleFirstLaunchComplete(svc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.SetFirstLaunchComplete(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgUpdateSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFirstLaunchDone})
	}
}

// HandleToggleSetting flips a boolean preference with toggle
func HandleToggleSetting(toggle func(context.Context) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		on, err := toggle(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ToggleResponse{Enabled: on})
	}
}
