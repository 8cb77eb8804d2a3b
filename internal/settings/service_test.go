package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/testing/storetest"
)

func newStoreService(t *testing.T) Service {
	t.Helper()
	store, bus := storetest.Open(t)
	return NewService(store, bus)
}

func TestSnapshot_Defaults(t *testing.T) {
	svc := newStoreService(t)

	prefs, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserPreferences(), prefs)
	assert.True(t, prefs.NotificationsEnabled)
	assert.Equal(t, "en", prefs.LanguageCode)
}

func TestUpdates_TouchOnlyTheirKey(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateDarkMode(ctx, true))
	require.NoError(t, svc.SetFirstLaunchComplete(ctx))

	prefs, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	want := domain.DefaultUserPreferences()
	want.DarkMode = true
	want.IsFirstLaunch = false
	assert.Equal(t, want, prefs)
}

func TestUpdateLanguage(t *testing.T) {
	tests := []struct {
		code    string
		want    string
		wantErr bool
	}{
		{code: "af", want: "af"},
		{code: "zu", want: domain.LanguageZulu},
		{code: "en-GB", want: "en"},
		{code: "fr", wantErr: true},
		{code: "not a tag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svc := newStoreService(t)
			ctx := context.Background()

			err := svc.UpdateLanguage(ctx, tt.code)
			prefs, snapErr := svc.Snapshot(ctx)
			require.NoError(t, snapErr)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidLanguage)
				assert.Equal(t, "en", prefs.LanguageCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, prefs.LanguageCode)
		})
	}
}

func TestToggles(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	on, err := svc.ToggleShowNutritionInfo(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = svc.ToggleBiometric(ctx)
	require.NoError(t, err)
	assert.True(t, on)

	prefs, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, prefs.ShowNutritionInfo)
	assert.True(t, prefs.BiometricEnabled)
}

func TestObserve_DeliversEachChange(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	sub := svc.Observe(ctx)
	defer sub.Close()
	assert.False(t, storetest.Next(t, sub).DarkMode)

	require.NoError(t, svc.UpdateDarkMode(ctx, true))
	assert.True(t, storetest.Next(t, sub).DarkMode)

	require.NoError(t, svc.UpdateNotifications(ctx, false))
	prefs := storetest.Next(t, sub)
	assert.True(t, prefs.DarkMode)
	assert.False(t, prefs.NotificationsEnabled)
}

func TestSnapshot_BadValueFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetPreferences", ctx).Return(map[string]string{
		KeyDarkMode:         "maybe",
		KeyBiometricEnabled: "true",
	}, nil)

	prefs, err := NewService(repo, nil).Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode)
	assert.True(t, prefs.BiometricEnabled)
}

func TestUpdateBiometricEnabled_WritesKey(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("SetPreference", ctx, KeyBiometricEnabled, "true").Return(nil)

	require.NoError(t, NewService(repo, nil).UpdateBiometricEnabled(ctx, true))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "SetPreference", mock.Anything, KeyDarkMode, mock.Anything)
}
