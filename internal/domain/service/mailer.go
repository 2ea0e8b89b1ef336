package service

import "context"

// Mailer delivers out-of-band messages such as password-reset links.
// Delivery is best-effort: callers log failures but never surface them to
// the requester, so the reset endpoint's response stays neutral.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
