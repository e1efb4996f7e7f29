// Package mutate issues roster mutations against the sign-up service
// and drives the user feedback and resync that follow them.
package mutate

import (
	"context"
	"log"

	"github.com/good-yellow-bee/rollcall/internal/metrics"
	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/notify"
	"github.com/good-yellow-bee/rollcall/internal/roster"
	"github.com/good-yellow-bee/rollcall/internal/session"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

// User-facing text. Rejection details from the service are shown
// verbatim; everything else is fixed.
const (
	MsgLoginRequired    = "Please login as a teacher first"
	MsgGenericRejection = "An error occurred"
	MsgSignupFailed     = "Failed to sign up. Please try again."
	MsgUnregisterFailed = "Failed to unregister. Please try again."
)

// Controller performs signup and unregister operations. Every outcome
// produces a notice; only success triggers a roster refresh, so a
// failed mutation leaves the rendered roster untouched.
type Controller struct {
	client  *upstream.Client
	sync    *roster.Synchronizer
	notices *notify.Center
}

// NewController wires a Controller to the upstream client, the roster
// synchronizer, and the notice center.
func NewController(client *upstream.Client, sync *roster.Synchronizer, notices *notify.Center) *Controller {
	return &Controller{client: client, sync: sync, notices: notices}
}

// Signup enrolls email in the named activity on behalf of the session's
// teacher. Unauthenticated sessions get an error notice and no network
// call is made.
func (c *Controller) Signup(ctx context.Context, sess *session.Session, activity, email string) {
	c.run(ctx, sess, "signup", activity, email, MsgSignupFailed, c.client.Signup)
}

// Unregister removes email from the named activity on behalf of the
// session's teacher. Same precondition and feedback rules as Signup.
func (c *Controller) Unregister(ctx context.Context, sess *session.Session, activity, email string) {
	c.run(ctx, sess, "unregister", activity, email, MsgUnregisterFailed, c.client.Unregister)
}

func (c *Controller) run(
	ctx context.Context,
	sess *session.Session,
	operation, activity, email, transportMsg string,
	call func(context.Context, models.Credentials, string, string) (string, error),
) {
	creds, ok := sess.Credentials()
	if !ok {
		c.notices.Show(sess.ID, MsgLoginRequired, notify.SeverityError)
		return
	}

	message, err := call(ctx, creds, activity, email)
	if err != nil {
		if rej, ok := upstream.AsRejection(err); ok {
			metrics.UpstreamRequestsTotal.WithLabelValues(operation, "rejected").Inc()
			text := rej.Detail
			if text == "" {
				text = MsgGenericRejection
			}
			c.notices.Show(sess.ID, text, notify.SeverityError)
			return
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		log.Printf("%s %s for %s: %v", operation, activity, email, err)
		c.notices.Show(sess.ID, transportMsg, notify.SeverityError)
		return
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(operation, "success").Inc()
	c.notices.Show(sess.ID, message, notify.SeveritySuccess)

	// Resync starts only after the mutation response has arrived.
	c.sync.Refresh(ctx)
}
