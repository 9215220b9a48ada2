package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"bnapp/internal/gihari"
	"bnapp/internal/model"
	pkgResponse "bnapp/pkg/response"
	pkgTelegram "bnapp/pkg/telegram"
)

// HandleWebhook acknowledges the update at once and answers in the background,
// so Telegram never waits on the store.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram handler: bad webhook secret")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	owner, ok := h.owners[msg.Chat.ID]
	if !ok {
		h.l.Warnf(ctx, "telegram handler: message from unregistered chat %d", msg.Chat.ID)
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgNotRegistered)
	}
	sc := model.Scope{Viewer: owner}

	// Commands may carry the bot name, as in /help@bnapp_bot.
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")

	var (
		reply gihari.Reply
		err   error
	)
	switch cmd {
	case cmdStart, cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	case cmdSummary:
		out, err := h.uc.Summary(ctx, sc)
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID,
			fmt.Sprintf(msgSummary, out.BusyHours, out.Level.Label(), out.FreeSlots))
	case cmdSuggest:
		reply, err = h.uc.Suggest(ctx, sc, gihari.ReplyOptions{})
	case cmdFreeTime:
		reply, err = h.uc.FreeTime(ctx, sc, gihari.ReplyOptions{})
	default:
		reply, err = h.uc.Command(ctx, sc, gihari.CommandInput{Text: text, Source: gihari.SourceTelegram})
	}
	if err != nil {
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, reply.String())
}
