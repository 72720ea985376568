package activities

import (
	"context"
	"fmt"
	"strings"

	"Mergington-Activities/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
)

// Notifier is told about every successful signup. Failures are logged, never returned.
type Notifier interface {
	NotifySignup(ctx context.Context, activity, email string) error
}

type Service struct {
	store    Store
	cache    *Cache
	notifier Notifier
	validate *validator.Validate
}

// NewService wires the store with an optional cache and notifier (both may be nil).
func NewService(store Store, cache *Cache, notifier Notifier) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context) (*models.Activities, error) {
	return s.store.List(ctx)
}

// ListJSON returns the ordered activities document, from cache when possible.
func (s *Service) ListJSON(ctx context.Context) ([]byte, error) {
	if data, ok := s.cache.Get(ctx); ok {
		return data, nil
	}

	activities, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	data, err := activities.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode activities: %w", err)
	}
	s.cache.Set(ctx, data)
	return data, nil
}

// Signup adds email to the roster of name and returns the confirmation message.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	email, err := s.checkEmail(email)
	if err != nil {
		return "", err
	}
	if err := s.store.AddParticipant(ctx, name, email); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx)

	if s.notifier != nil {
		if err := s.notifier.NotifySignup(ctx, name, email); err != nil {
			log.Errorw("❌ signup notification failed", "activity", name, "email", email, "error", err)
		}
	}
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

func (s *Service) Remove(ctx context.Context, name, email string) (string, error) {
	email, err := s.checkEmail(email)
	if err != nil {
		return "", err
	}
	if err := s.store.RemoveParticipant(ctx, name, email); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx)
	return fmt.Sprintf("Removed %s from %s", email, name), nil
}

func (s *Service) checkEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", ErrValidation
	}
	return email, nil
}
