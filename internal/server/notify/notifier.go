// Package notify delivers the emails that accompany identity and invitation
// flows. Delivery is fire-and-forget: a Notifier reports failure through
// Result and never interrupts the state change that triggered it.
package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskhub/internal/logging"
)

// Template identifies a message kind.
type Template string

const (
	TemplateOTP               Template = "otp"
	TemplatePasswordReset     Template = "password_reset"
	TemplateEmailVerification Template = "email_verification"
	TemplateProjectInvitation Template = "project_invitation"
	TemplateProjectAdded      Template = "project_added"
)

// Result is the outcome of a single send.
type Result struct {
	Success bool
	Err     error
}

func Ok() Result { return Result{Success: true} }

func Failed(err error) Result { return Result{Err: err} }

// Notifier sends one templated message to one recipient.
type Notifier interface {
	Send(ctx context.Context, tpl Template, recipient string, data map[string]any) Result
}

// Deliver calls n and turns a panic into a failed Result. Failures are logged
// with the template and recipient; the caller only inspects Success.
func Deliver(ctx context.Context, n Notifier, logger logging.Logger, tpl Template, recipient string, data map[string]any) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Failed(fmt.Errorf("notifier panic: %v", p))
		}
		if !res.Success {
			logger.Warn(ctx, "notification not delivered",
				"template", string(tpl), "recipient", recipient, "error", errString(res.Err))
		}
	}()

	if n == nil {
		return Failed(fmt.Errorf("no notifier configured"))
	}
	return n.Send(ctx, tpl, recipient, data)
}

func errString(err error) string {
	if err == nil {
		return "unknown"
	}
	return err.Error()
}
