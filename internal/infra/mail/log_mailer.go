// Package mail provides outbound mail delivery.
package mail

import (
	"context"
	"log/slog"

	"gamedash/internal/domain/service"
)

// logMailer writes outbound mail to the structured log instead of sending
// it. Deployments without an SMTP relay (development, CI) run with this
// implementation; the recovery flow behaves identically either way.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that records messages via the given logger.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// Send logs the message. It never fails, so callers cannot leak delivery
// outcomes to the requester.
func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.InfoContext(ctx, "outbound mail",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
