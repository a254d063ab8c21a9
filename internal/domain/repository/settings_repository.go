package repository

import (
	"context"

	"github.com/venuedesk/venuedesk-api/internal/domain/entity"
)

// SettingsRepository defines the interface for system settings data access.
// A single settings row exists for the whole installation.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SystemSettings, error)
	Create(ctx context.Context, settings *entity.SystemSettings) error
	Update(ctx context.Context, settings *entity.SystemSettings) error
}
