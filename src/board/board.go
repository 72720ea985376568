package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

// State is the externally visible board state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
)

const (
	loadingText      = "Loading activities..."
	validationText   = "Please provide both email and an activity."
	signupSuccess    = "Signed up successfully!"
	signupFailure    = "Signup failed"
	removalFailure   = "Failed to remove participant"
	loadErrorPrefix  = "Could not load activities: "
	networkErrPrefix = "Network error: "
)

// ActivityBoard owns the render cycle of one page. Every successful mutation is
// followed by a full LoadAndRender; the board never patches the rendered state
// locally. Overlapping loads are not sequenced: the last one to finish wins.
type ActivityBoard struct {
	gateway Gateway
	surface Surface
	confirm Confirmer

	mu    sync.Mutex
	state State
}

// New binds a board to its surface. A nil confirmer declines every removal.
func New(gateway Gateway, surface Surface, confirm Confirmer) *ActivityBoard {
	if confirm == nil {
		confirm = ConfirmFunc(func(context.Context, Prompt) bool { return false })
	}
	return &ActivityBoard{
		gateway: gateway,
		surface: surface,
		confirm: confirm,
		state:   StateIdle,
	}
}

func (b *ActivityBoard) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *ActivityBoard) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

// LoadAndRender fetches the activities and redraws the list and the select.
// Failures are rendered inline in the list; the returned error is for logging only.
func (b *ActivityBoard) LoadAndRender(ctx context.Context) error {
	b.setState(StateLoading)
	defer b.setState(StateIdle)

	b.surface.ShowListPlaceholder(loadingText)
	b.surface.ResetOptions()

	activities, err := b.gateway.ListActivities(ctx)
	if err != nil {
		b.surface.ShowListError(loadErrorPrefix + loadErrorText(err))
		return fmt.Errorf("load activities: %w", err)
	}

	b.surface.ClearList()
	for _, name := range activities.Names() {
		b.surface.AddOption(name)
	}
	// cards are sorted by name, independently of the select order
	for _, name := range activities.SortedNames() {
		activity, _ := activities.Get(name)
		b.surface.AppendCard(NewCard(name, activity))
	}
	return nil
}

func loadErrorText(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Failed to load activities (%d)", statusErr.Code)
	}
	return err.Error()
}

// SubmitSignup signs email up for activity. Both are trimmed; if either is empty
// no request is made.
func (b *ActivityBoard) SubmitSignup(ctx context.Context, email, activity string) error {
	email = strings.TrimSpace(email)
	activity = strings.TrimSpace(activity)
	if email == "" || activity == "" {
		b.ShowMessage(validationText, KindError)
		return ErrValidation
	}

	message, err := b.gateway.Signup(ctx, activity, email)
	if err != nil {
		b.showFailure(err, signupFailure)
		return fmt.Errorf("signup %q for %q: %w", email, activity, err)
	}

	b.ShowMessage(firstNonEmpty(message, signupSuccess), KindSuccess)
	b.surface.ResetForm()
	return b.LoadAndRender(ctx)
}

// RemoveParticipant asks for confirmation and then removes email from activity.
// A declined prompt does nothing.
func (b *ActivityBoard) RemoveParticipant(ctx context.Context, activity, email string) error {
	if !b.confirm.Confirm(ctx, Prompt{Activity: activity, Email: email}) {
		return nil
	}

	message, err := b.gateway.RemoveParticipant(ctx, activity, email)
	if err != nil {
		b.showFailure(err, removalFailure)
		return fmt.Errorf("remove %q from %q: %w", email, activity, err)
	}

	b.ShowMessage(firstNonEmpty(message, "Removed "+email), KindSuccess)
	return b.LoadAndRender(ctx)
}

// ShowMessage replaces the status message.
func (b *ActivityBoard) ShowMessage(text string, kind Kind) {
	b.surface.SetMessage(text, kind)
}

func (b *ActivityBoard) showFailure(err error, fallback string) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		b.ShowMessage(statusErr.Text(fallback), KindError)
		return
	}
	log.Warnw("activities api unreachable", "error", err)
	b.ShowMessage(networkErrPrefix+err.Error(), KindError)
}
