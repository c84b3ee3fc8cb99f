package adapter

import (
	"context"
	"log/slog"

	checkoutapp "github.com/leng404/gymshop/internal/checkout/app"
)

// SlogNotifier surfaces user notifications through the service log.
// The browser shows its own dialog from the HTTP response; the log is
// the server-side record of the same event.
type SlogNotifier struct {
	log *slog.Logger
}

func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log}
}

func (n *SlogNotifier) Notify(kind checkoutapp.NotifyKind, title, body string) {
	level := slog.LevelInfo
	if kind == checkoutapp.NotifyError {
		level = slog.LevelWarn
	}
	n.log.Log(context.Background(), level, "notify",
		slog.String("kind", string(kind)),
		slog.String("title", title),
		slog.String("body", body),
	)
}

// StaticConfirmer answers every prompt with a fixed decision. The
// actual dialog runs client-side; the handler binds the user's answer
// here so the flow still runs its full transition sequence.
type StaticConfirmer struct {
	Answer bool
}

func (c StaticConfirmer) Confirm(_ context.Context, _, _ string) (bool, error) {
	return c.Answer, nil
}
