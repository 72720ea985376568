package email

import (
	"fmt"
	"strings"

	"Mergington-Activities/src/config"

	"github.com/gofiber/fiber/v2/log"
	gomail "gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// NewSMTPSender checks that the SMTP settings needed to send are present.
func NewSMTPSender(cfg config.SMTP) (*SMTPSender, error) {
	missing := []string{}
	if cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if cfg.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if cfg.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %v", strings.Join(missing, ", "))
	}
	return &SMTPSender{Host: cfg.Host, Port: cfg.Port, User: cfg.User, Pass: cfg.Pass, From: cfg.From}, nil
}

func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	return d.DialAndSend(m)
}

// LogSender ใช้ตอนไม่ได้ตั้งค่า SMTP: แค่ log ว่าจะส่งอีเมลถึงใคร
type LogSender struct{}

func (LogSender) Send(to, subject, _ string) error {
	log.Infow("📧 SMTP not configured, mail not sent", "to", to, "subject", subject)
	return nil
}

// NewSender returns the SMTP sender when configured, otherwise a LogSender.
func NewSender(cfg config.SMTP) MailSender {
	if !cfg.Enabled() {
		log.Warn("⚠️ SMTP not configured. Confirmation mail will only be logged.")
		return LogSender{}
	}
	sender, err := NewSMTPSender(cfg)
	if err != nil {
		log.Warnw("⚠️ SMTP config incomplete", "error", err)
		return LogSender{}
	}
	return sender
}
