package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"bnapp/internal/gihari"
	"bnapp/internal/model"
	pkgLog "bnapp/pkg/log"
)

// Sender is the part of the Telegram bot used for replies. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config maps each participant to their private chat and holds the webhook secret.
type Config struct {
	Chats  map[model.Owner]int64
	Secret string
}

type handler struct {
	l      pkgLog.Logger
	uc     gihari.UseCase
	bot    Sender
	owners map[int64]model.Owner
	secret string
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc gihari.UseCase, bot Sender, cfg Config) Handler {
	owners := make(map[int64]model.Owner, len(cfg.Chats))
	for owner, chatID := range cfg.Chats {
		if chatID != 0 && owner.IsParticipant() {
			owners[chatID] = owner
		}
	}
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		owners: owners,
		secret: cfg.Secret,
	}
}
