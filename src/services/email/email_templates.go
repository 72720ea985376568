package email

import (
	"bytes"
	_ "embed"
	"html/template"
)

type SignupEmailData struct {
	Email          string
	ActivityName   string
	Description    string
	Schedule       string
	AvailableSlots int
	BoardLink      string
}

//go:embed email_signup_confirmation.html
var signupEmailHTML string

var signupEmailTmpl = template.Must(template.New("signup").Parse(signupEmailHTML))

func SignupSubject(activityName string) string {
	return "You're signed up: " + activityName
}

func RenderSignupEmailHTML(data SignupEmailData) (string, error) {
	if data.Schedule == "" {
		data.Schedule = "TBD"
	}
	var buf bytes.Buffer
	if err := signupEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
