package activities

import (
	"context"

	"Mergington-Activities/src/models"
)

// Store keeps the activities and their rosters. AddParticipant and
// RemoveParticipant must check and mutate atomically per activity.
type Store interface {
	List(ctx context.Context) (*models.Activities, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
	// Seed inserts the activities that do not exist yet; existing rosters are kept.
	Seed(ctx context.Context, activities *models.Activities) error
}
