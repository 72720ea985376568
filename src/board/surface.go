// Package board implements the activity board: it loads the activities from the
// activities API, renders them onto a Surface and runs the signup and removal
// actions, reloading everything from the server after each successful mutation.
package board

import (
	"context"
	"fmt"

	"Mergington-Activities/src/models"
)

// Element ids of the page the board binds to.
const (
	ListID    = "activities-list"
	SelectID  = "activity"
	FormID    = "signup-form"
	EmailID   = "email"
	MessageID = "message"
)

// Kind classifies a status message for styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Card is everything rendered for one activity.
type Card struct {
	Name           string
	Description    string
	Schedule       string
	AvailableSlots int
	Participants   []string
}

// NewCard applies the display defaults: "TBD" for a missing schedule and the
// clamped available-slot count.
func NewCard(name string, activity models.Activity) Card {
	schedule := activity.Schedule
	if schedule == "" {
		schedule = "TBD"
	}
	return Card{
		Name:           name,
		Description:    activity.Description,
		Schedule:       schedule,
		AvailableSlots: activity.AvailableSlots(),
		Participants:   append([]string(nil), activity.Participants...),
	}
}

// Surface is the set of page elements the board writes to.
type Surface interface {
	// ShowListPlaceholder replaces the list content with a single text row.
	ShowListPlaceholder(text string)
	// ShowListError replaces the list content with an error row.
	ShowListError(text string)
	ClearList()
	// ResetOptions leaves only the placeholder option in the select.
	ResetOptions()
	AddOption(name string)
	AppendCard(card Card)
	// ResetForm empties the email input and deselects the activity.
	ResetForm()
	SetMessage(text string, kind Kind)
}

// Prompt is the removal question put to the user.
type Prompt struct {
	Activity string
	Email    string
}

func (p Prompt) String() string {
	return fmt.Sprintf("Remove %s from %s?", p.Email, p.Activity)
}

// Confirmer asks a blocking yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt Prompt) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt Prompt) bool {
	return f(ctx, prompt)
}
