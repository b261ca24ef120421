// Package telegram relays admin alerts to an operations chat. Sends are
// best-effort: failures are logged and never reach the caller.
package telegram

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"
)

type Bot struct {
	bot    *telego.Bot
	chatID telego.ChatID
}

func New(token string, chatID int64) (*Bot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, err
	}
	return &Bot{bot: bot, chatID: tu.ID(chatID)}, nil
}

func (b *Bot) Notify(ctx context.Context, text string) {
	if _, err := b.bot.SendMessage(ctx, tu.Message(b.chatID, text)); err != nil {
		zap.S().Errorf("telegram: send message: %v", err)
	}
}

func (b *Bot) NotifyPhoto(ctx context.Context, text, photoURL string) {
	photo := tu.Photo(b.chatID, tu.FileFromURL(photoURL)).WithCaption(text)
	if _, err := b.bot.SendPhoto(ctx, photo); err != nil {
		zap.S().Errorf("telegram: send photo: %v", err)
	}
}

// Noop is used when the relay is not configured.
type Noop struct{}

func (Noop) Notify(ctx context.Context, text string)                {}
func (Noop) NotifyPhoto(ctx context.Context, text, photoURL string) {}
