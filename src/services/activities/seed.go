package activities

import (
	"context"
	"fmt"

	"Mergington-Activities/src/models"

	"github.com/gofiber/fiber/v2/log"
)

// DefaultActivities คือกิจกรรมเริ่มต้นของ Mergington High School
func DefaultActivities() *models.Activities {
	activities := models.NewActivities()
	activities.Set("Chess Club", models.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	})
	activities.Set("Programming Class", models.Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	})
	activities.Set("Gym Class", models.Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	})
	return activities
}

// SeedDefaults ใส่กิจกรรมเริ่มต้นลง store (ข้ามกิจกรรมที่มีอยู่แล้ว)
func SeedDefaults(ctx context.Context, store Store) error {
	defaults := DefaultActivities()
	if err := store.Seed(ctx, defaults); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	log.Infof("🌱 Seeded %d default activities", defaults.Len())
	return nil
}
