package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"Mergington-Activities/src/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(to, subject, html string) error {
	args := m.Called(to, subject, html)
	return args.Error(0)
}

type staticLister struct {
	activities *models.Activities
	err        error
}

func (s staticLister) List(context.Context) (*models.Activities, error) {
	return s.activities, s.err
}

func chessOnly(participants ...string) staticLister {
	activities := models.NewActivities()
	activities.Set("Chess Club", models.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    participants,
	})
	return staticLister{activities: activities}
}

func TestNewSignupConfirmationTask(t *testing.T) {
	task, err := NewSignupConfirmationTask(" Chess Club ", " jane@mergington.edu ")
	require.NoError(t, err)
	assert.Equal(t, TypeSignupConfirmation, task.Type())

	var p SignupConfirmationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, SignupConfirmationPayload{Activity: "Chess Club", Email: "jane@mergington.edu"}, p)
}

func TestHandleSignupConfirmation(t *testing.T) {
	ctx := context.Background()
	task, err := NewSignupConfirmationTask("Chess Club", "jane@mergington.edu")
	require.NoError(t, err)

	t.Run("sends the confirmation", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", "jane@mergington.edu", "You're signed up: Chess Club",
			mock.MatchedBy(func(html string) bool {
				return assert.Contains(t, html, "Fridays, 3:30 PM - 5:00 PM") &&
					assert.Contains(t, html, "<td>11</td>")
			})).Return(nil).Once()

		handler := HandleSignupConfirmation(sender, chessOnly("jane@mergington.edu"), "http://localhost:8888/")
		require.NoError(t, handler(ctx, task))
		sender.AssertExpectations(t)
	})

	t.Run("skips a participant removed in the meantime", func(t *testing.T) {
		sender := new(mockSender)

		handler := HandleSignupConfirmation(sender, chessOnly(), "")
		require.NoError(t, handler(ctx, task))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips an unknown activity", func(t *testing.T) {
		sender := new(mockSender)
		lister := staticLister{activities: models.NewActivities()}

		require.NoError(t, HandleSignupConfirmation(sender, lister, "")(ctx, task))
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		handler := HandleSignupConfirmation(new(mockSender), chessOnly(), "")

		err := handler(ctx, asynq.NewTask(TypeSignupConfirmation, []byte(`{"activity":""}`)))
		assert.ErrorIs(t, err, asynq.SkipRetry)
		err = handler(ctx, asynq.NewTask(TypeSignupConfirmation, []byte(`not json`)))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		sender := new(mockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		err := HandleSignupConfirmation(sender, chessOnly("jane@mergington.edu"), "")(ctx, task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		lister := staticLister{err: errors.New("mongo down")}

		assert.Error(t, HandleSignupConfirmation(new(mockSender), lister, "")(ctx, task))
	})
}

func TestEnqueuer_NoRedis(t *testing.T) {
	assert.NoError(t, NewEnqueuer(nil).NotifySignup(context.Background(), "Chess Club", "jane@mergington.edu"))

	var e *Enqueuer
	assert.NoError(t, e.NotifySignup(context.Background(), "Chess Club", "jane@mergington.edu"))
}

func TestNewServeMux_RoutesSignupConfirmation(t *testing.T) {
	sender := new(mockSender)
	sender.On("Send", "jane@mergington.edu", mock.Anything, mock.Anything).Return(nil).Once()
	mux := NewServeMux(sender, chessOnly("jane@mergington.edu"), "")

	task, err := NewSignupConfirmationTask("Chess Club", "jane@mergington.edu")
	require.NoError(t, err)
	require.NoError(t, mux.ProcessTask(context.Background(), task))
	sender.AssertExpectations(t)
}
