package notify

import (
	"context"
	"fmt"
)

// MessageSender is the part of the Telegram bot used for delivery.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Telegram delivers to the chat registered for each recipient.
type Telegram struct {
	bot   MessageSender
	chats map[string]int64
}

// NewTelegram creates a Telegram notifier. chats maps a recipient to its chat ID.
func NewTelegram(bot MessageSender, chats map[string]int64) *Telegram {
	return &Telegram{bot: bot, chats: chats}
}

func (t *Telegram) Notify(ctx context.Context, msg Message) error {
	chatID, ok := t.chats[msg.Recipient]
	if !ok || chatID == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownRecipient, msg.Recipient)
	}
	text := msg.Text
	if msg.Subject != "" {
		text = msg.Subject + "\n" + msg.Text
	}
	if err := t.bot.SendMessage(ctx, chatID, text); err != nil {
		return fmt.Errorf("telegram notify %s: %w", msg.Recipient, err)
	}
	return nil
}
