package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// Service reads and writes user preferences. Each setter touches only its own
// key.
type Service interface {
	// Snapshot returns the current preferences with defaults for absent keys
	Snapshot(ctx context.Context) (domain.UserPreferences, error)
	Observe(ctx context.Context) *live.Subscription[domain.UserPreferences]
	UpdateDarkMode(ctx context.Context, enabled bool) error
	UpdateNotifications(ctx context.Context, enabled bool) error
	UpdateShowNutritionInfo(ctx context.Context, enabled bool) error
	// UpdateLanguage stores the supported language matching code, or returns
	// domain.ErrInvalidLanguage
	UpdateLanguage(ctx context.Context, code string) error
	SetFirstLaunchComplete(ctx context.Context) error
	UpdateBiometricEnabled(ctx context.Context, enabled bool) error
	ToggleShowNutritionInfo(ctx context.Context) (bool, error)
	ToggleBiometric(ctx context.Context) (bool, error)
}

type service struct {
	repo Repository
	bus  event.Bus
}

// NewService creates a new settings service
func NewService(repo Repository, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) Snapshot(ctx context.Context) (domain.UserPreferences, error) {
	raw, err := s.repo.GetPreferences(ctx)
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("load preferences: %w", err)
	}
	return decode(ctx, raw), nil
}

func (s *service) Observe(ctx context.Context) *live.Subscription[domain.UserPreferences] {
	return live.NewQuery(s.bus, QuerySnapshot, s.Snapshot, event.PreferencesChanged).Observe(ctx)
}

func decode(ctx context.Context, raw map[string]string) domain.UserPreferences {
	prefs := domain.DefaultUserPreferences()
	prefs.DarkMode = boolValue(ctx, raw, KeyDarkMode, prefs.DarkMode)
	prefs.NotificationsEnabled = boolValue(ctx, raw, KeyNotificationsEnabled, prefs.NotificationsEnabled)
	prefs.ShowNutritionInfo = boolValue(ctx, raw, KeyShowNutritionInfo, prefs.ShowNutritionInfo)
	prefs.IsFirstLaunch = boolValue(ctx, raw, KeyIsFirstLaunch, prefs.IsFirstLaunch)
	prefs.BiometricEnabled = boolValue(ctx, raw, KeyBiometricEnabled, prefs.BiometricEnabled)
	if code, ok := raw[KeyLanguageCode]; ok && code != "" {
		prefs.LanguageCode = code
	}
	return prefs
}

func boolValue(ctx context.Context, raw map[string]string, key string, fallback bool) bool {
	value, ok := raw[key]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPreferenceInvalid, "key", key, "value", value)
		return fallback
	}
	return b
}

func (s *service) set(ctx context.Context, key, value string) error {
	if err := s.repo.SetPreference(ctx, key, value); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	logger.FromContext(ctx).Debug(LogMsgPreferenceUpdated, "key", key, "value", value)
	return nil
}

func (s *service) setBool(ctx context.Context, key string, value bool) error {
	return s.set(ctx, key, strconv.FormatBool(value))
}

func (s *service) UpdateDarkMode(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyDarkMode, enabled)
}

func (s *service) UpdateNotifications(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyNotificationsEnabled, enabled)
}

func (s *service) UpdateShowNutritionInfo(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyShowNutritionInfo, enabled)
}

func (s *service) UpdateLanguage(ctx context.Context, code string) error {
	normalized, err := NormalizeLanguage(code)
	if err != nil {
		return err
	}
	return s.set(ctx, KeyLanguageCode, normalized)
}

func (s *service) SetFirstLaunchComplete(ctx context.Context) error {
	return s.setBool(ctx, KeyIsFirstLaunch, false)
}

func (s *service) UpdateBiometricEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, KeyBiometricEnabled, enabled)
}

func (s *service) ToggleShowNutritionInfo(ctx context.Context) (bool, error) {
	return s.toggle(ctx, KeyShowNutritionInfo, func(p domain.UserPreferences) bool { return p.ShowNutritionInfo })
}

func (s *service) ToggleBiometric(ctx context.Context) (bool, error) {
	return s.toggle(ctx, KeyBiometricEnabled, func(p domain.UserPreferences) bool { return p.BiometricEnabled })
}

// toggle is a read-then-write and shares the race of any check-then-act
func (s *service) toggle(ctx context.Context, key string, current func(domain.UserPreferences) bool) (bool, error) {
	prefs, err := s.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	next := !current(prefs)
	if err := s.setBool(ctx, key, next); err != nil {
		return !next, err
	}
	return next, nil
}
