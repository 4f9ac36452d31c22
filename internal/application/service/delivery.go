package service

import (
	"context"
	"fmt"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/application/dto"
	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/pkg/logger"
)

// actionKind tags what a scheduled job does when it fires. Only email
// delivery is scheduled today; the tag leaves room for other actions.
type actionKind string

const actionSendEmail actionKind = "send_email"

// boundTask is the action bound to a scheduled job at schedule time. It
// captures the full email payload so later mutations of the original
// request cannot change what gets sent. Firing is fire-and-forget: the
// outcome is logged, never retried, and never surfaced to the caller
// that created the schedule.
type boundTask struct {
	scheduleID string
	kind       actionKind
	email      dto.EmailRequest

	emails EmailService
	log    logger.Logger
	done   func() // invoked after a one-shot fire; nil for recurring jobs
}

// Run executes the bound action. It is invoked by the scheduler runtime
// at each occurrence.
func (t *boundTask) Run() {
	t.log.Info(fmt.Sprintf("Executing scheduled %s job %s", t.kind, t.scheduleID))

	switch t.kind {
	case actionSendEmail:
		// The originating request is long gone; scheduled sends run
		// under a background context.
		resp, err := t.emails.Send(context.Background(), t.email)
		if err != nil {
			t.log.Error(fmt.Sprintf("Scheduled email %s failed", t.scheduleID), err)
		} else {
			t.log.Info(fmt.Sprintf("Scheduled email %s sent. Message ID: %s", t.scheduleID, resp.MessageID))
		}
	default:
		t.log.Error(fmt.Sprintf("Scheduled job %s has unknown action kind %q", t.scheduleID, t.kind), nil)
	}

	if t.done != nil {
		t.done()
	}
}
