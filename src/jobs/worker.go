package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Mergington-Activities/src/models"
	"Mergington-Activities/src/services/email"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hibiken/asynq"
)

// ActivityLister is the read side the worker needs to fill in the mail.
type ActivityLister interface {
	List(ctx context.Context) (*models.Activities, error)
}

// HandleSignupConfirmation ส่งอีเมลยืนยันการสมัครกิจกรรม
func HandleSignupConfirmation(sender email.MailSender, activities ActivityLister, boardURL string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p SignupConfirmationPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		p.Normalize()
		if p.Activity == "" || p.Email == "" {
			return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
		}

		all, err := activities.List(ctx)
		if err != nil {
			return err
		}
		activity, ok := all.Get(p.Activity)
		if !ok {
			log.Warnw("⚠️ Activity not found. Possibly deleted. Skipping task", "activity", p.Activity)
			return nil
		}
		// ถูกลบออกไปก่อน worker ทำงาน ไม่ต้องส่ง
		if !activity.HasParticipant(p.Email) {
			log.Infow("participant already removed, skip confirmation", "activity", p.Activity, "email", p.Email)
			return nil
		}

		html, err := email.RenderSignupEmailHTML(email.SignupEmailData{
			Email:          p.Email,
			ActivityName:   p.Activity,
			Description:    activity.Description,
			Schedule:       activity.Schedule,
			AvailableSlots: activity.AvailableSlots(),
			BoardLink:      boardURL,
		})
		if err != nil {
			return fmt.Errorf("render email: %v: %w", err, asynq.SkipRetry)
		}
		if err := sender.Send(p.Email, email.SignupSubject(p.Activity), html); err != nil {
			return fmt.Errorf("send mail to %s: %w", p.Email, err)
		}

		log.Infow("✅ signup confirmation sent", "activity", p.Activity, "email", p.Email)
		return nil
	}
}

// NewServeMux registers every task handler of the app.
func NewServeMux(sender email.MailSender, activities ActivityLister, boardURL string) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSignupConfirmation, HandleSignupConfirmation(sender, activities, boardURL))
	return mux
}

// Worker runs the asynq server in-process next to the web app.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisOpt asynq.RedisClientOpt, mux *asynq.ServeMux) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		Logger:      asynqLogger{},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, t *asynq.Task, err error) {
			if errors.Is(err, asynq.SkipRetry) {
				log.Errorw("❌ task dropped", "type", t.Type(), "error", err)
				return
			}
			log.Warnw("⚠️ task failed, will retry", "type", t.Type(), "error", err)
		}),
	})
	return &Worker{server: server, mux: mux}
}

func (w *Worker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("start asynq worker: %w", err)
	}
	log.Info("✅ Asynq worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// asynqLogger routes asynq's internal logs through the fiber logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { log.Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { log.Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { log.Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { log.Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { log.Fatal(args...) }
