// Package chat is the Telegram transport: it pushes notifications to the
// operator chat and delivers each inbound line to a handler.
package chat

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Incoming is one inbound chat line, decoupled from the transport types.
type Incoming struct {
	MessageID int
	ChatID    int64
	Text      string
}

// Bot wraps the Telegram Bot API for a single operator chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

// New authenticates against the Telegram Bot API.
func New(token string, chatID int64, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to Telegram: %w", err)
	}
	return &Bot{api: api, chatID: chatID, log: log}, nil
}

// Notify sends text to the configured operator chat. Best effort,
// at-least-once from the caller's perspective: a failed send is only
// surfaced as the returned error.
func (b *Bot) Notify(text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(b.chatID, text)); err != nil {
		return fmt.Errorf("sending chat message: %w", err)
	}
	return nil
}

// Reply answers a specific inbound message.
func (b *Bot) Reply(in Incoming, text string) error {
	msg := tgbotapi.NewMessage(in.ChatID, text)
	msg.ReplyToMessageID = in.MessageID

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("replying in chat: %w", err)
	}
	return nil
}

// Typing shows the typing indicator in the operator chat before a slow
// operation. Failures are ignored; it is only a hint.
func (b *Bot) Typing() {
	_, _ = b.api.Request(tgbotapi.NewChatAction(b.chatID, tgbotapi.ChatTyping))
}

// Listen blocks on the update long-poll and hands every inbound text
// line to handler, one turn at a time.
func (b *Bot) Listen(handler func(Incoming)) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.api.GetUpdatesChan(u) {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		handler(Incoming{
			MessageID: update.Message.MessageID,
			ChatID:    update.Message.Chat.ID,
			Text:      update.Message.Text,
		})
	}
}
