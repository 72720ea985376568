package activities

import (
	"context"
	"slices"
	"sync"

	"Mergington-Activities/src/models"
)

// MemoryStore is the Store used when no MongoDB is configured.
type MemoryStore struct {
	mu         sync.RWMutex
	activities *models.Activities
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{activities: models.NewActivities()}
}

func (s *MemoryStore) List(_ context.Context) (*models.Activities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneActivities(s.activities), nil
}

func (s *MemoryStore) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities.Get(name)
	switch {
	case !ok:
		return ErrActivityNotFound
	case activity.HasParticipant(email):
		return ErrAlreadySignedUp
	case activity.AvailableSlots() == 0:
		return ErrActivityFull
	}
	activity.Participants = append(slices.Clone(activity.Participants), email)
	s.activities.Set(name, activity)
	return nil
}

func (s *MemoryStore) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities.Get(name)
	if !ok {
		return ErrActivityNotFound
	}
	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return ErrNotSignedUp
	}
	activity.Participants = slices.Delete(slices.Clone(activity.Participants), i, i+1)
	s.activities.Set(name, activity)
	return nil
}

func (s *MemoryStore) Seed(_ context.Context, activities *models.Activities) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range activities.Names() {
		if _, exists := s.activities.Get(name); exists {
			continue
		}
		activity, _ := activities.Get(name)
		activity.Participants = slices.Clone(activity.Participants)
		s.activities.Set(name, activity)
	}
	return nil
}

func cloneActivities(src *models.Activities) *models.Activities {
	out := models.NewActivities()
	for _, name := range src.Names() {
		activity, _ := src.Get(name)
		activity.Participants = slices.Clone(activity.Participants)
		out.Set(name, activity)
	}
	return out
}
