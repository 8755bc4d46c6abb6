package notify

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/logging"
)

// LogNotifier renders messages and writes them to the log instead of
// sending them. It is the development default. Bodies carry one-time codes
// and links, so they are only written at debug level.
type LogNotifier struct {
	renderer *Renderer
	logger   logging.Logger
}

func NewLogNotifier(r *Renderer, l logging.Logger) *LogNotifier {
	return &LogNotifier{renderer: r, logger: l.With("module", "log_notifier")}
}

func (n *LogNotifier) Send(ctx context.Context, tpl Template, recipient string, data map[string]any) Result {
	msg, err := n.renderer.Render(tpl, data)
	if err != nil {
		return Failed(err)
	}

	n.logger.Info(ctx, "email",
		"template", string(tpl),
		"recipient", recipient,
		"subject", msg.Subject,
	)
	n.logger.Debug(ctx, "email body", "recipient", recipient, "body", msg.Text)
	return Ok()
}
