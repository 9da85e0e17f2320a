// Package notifier implements the recurring scan that emails users who
// have not logged in for a while. It runs as a trusted internal process
// and never goes through the request-layer authorization policy.
package notifier

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"edumodules/internal/mailer"
	"edumodules/internal/repository"
)

const (
	// InactivityThreshold is how long a user may stay away before the
	// notice is sent. A user remains eligible on every run until they
	// log in again.
	InactivityThreshold = 15 * 24 * time.Hour

	noticeSubject = "Educational Modules"
	noticeBody    = "%s, You haven't visited our site for a long time to learn something new, come back! "
)

// Notifier scans for inactive users and mails each one. The clock is
// injectable for deterministic tests.
type Notifier struct {
	users  repository.UserRepository
	mailer mailer.Mailer
	now    func() time.Time
}

// New creates a notifier using the real clock.
func New(users repository.UserRepository, m mailer.Mailer) *Notifier {
	return &Notifier{users: users, mailer: m, now: time.Now}
}

// WithClock overrides the notifier's clock.
func (n *Notifier) WithClock(now func() time.Time) *Notifier {
	n.now = now
	return n
}

// Run performs a single scan. A failed send is logged and skipped so one
// bad address never blocks the rest of the batch. Only the query error is
// fatal.
func (n *Notifier) Run(ctx context.Context) error {
	cutoff := n.now().Add(-InactivityThreshold)

	users, err := n.users.FindInactiveSince(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("scan inactive users: %w", err)
	}

	for _, user := range users {
		body := fmt.Sprintf(noticeBody, user.FirstName)
		if err := n.mailer.Send(user.Email, noticeSubject, body); err != nil {
			log.Printf("notifier: send to %s: %v", user.Email, err)
			continue
		}
	}
	return nil
}

// Schedule registers the scan on the given cron spec and starts the
// scheduler. The returned cron can be stopped on shutdown.
func (n *Notifier) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := n.Run(context.Background()); err != nil {
			log.Printf("notifier: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule notifier: %w", err)
	}
	c.Start()
	return c, nil
}
