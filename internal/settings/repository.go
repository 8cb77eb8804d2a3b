package settings

import "context"

// Repository is a flat key/value preference store
type Repository interface {
	GetPreferences(ctx context.Context) (map[string]string, error)
	SetPreference(ctx context.Context, key, value string) error
}
