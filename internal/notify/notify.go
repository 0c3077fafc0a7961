// Package notify delivers transactional mail. Sends are best-effort:
// a failed delivery is logged and never propagated into the workflow
// that triggered it.
package notify

import (
	"strconv"

	logrus "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Subject string
	Body    string
	To      []string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(m Message) error
}

var (
	// Default is the globally accessible sender, assigned by Setup.
	// Tests swap in a recording fake.
	Default Sender = noopSender{}

	from = "noreply@smartcoach.com"
)

type noopSender struct{}

func (noopSender) Send(Message) error { return nil }

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func (s smtpSender) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)
	return s.dialer.DialAndSend(msg)
}

// Setup configures the SMTP sender from environment values. Without
// SMTP_HOST set, mail stays on the no-op sender (useful in dev).
func Setup(host, portStr, username, password, fromAddr string) {
	if host == "" {
		logrus.Info("SMTP_HOST not set, mail delivery disabled")
		return
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 587
	}
	if fromAddr != "" {
		from = fromAddr
	}
	Default = smtpSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Deliver sends m through the default sender and reports failures to
// the log only. Callers that need the outcome use Default.Send.
func Deliver(m Message) {
	if err := Default.Send(m); err != nil {
		logrus.WithError(err).WithField("subject", m.Subject).
			Warn("notification delivery failed")
	}
}

// DeliverAsync sends m on its own goroutine so the owning request
// never waits on the mail server.
func DeliverAsync(m Message) {
	go Deliver(m)
}
