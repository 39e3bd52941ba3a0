// Package mailer renders and delivers the welcome notification.
//
// The Composer is a pure transform from contact attributes to a Message;
// the template body is external data loaded once at startup and filled by
// placeholder substitution. SMTPTransport is a thin wrapper over net/smtp
// with a bounded send.
package mailer

import "time"

// SMTPConfig holds the mail transport collaborator's connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}
