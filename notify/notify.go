// Package notify turns new-order detection into something a human notices.
// The refresh loop only reports "new pending orders arrived"; sinks here
// decide what that means — a terminal bell at the booth, a Telegram message
// to the staff group chat, or both.
package notify

import (
	"fmt"
	"log"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier receives new-pending-order alerts.
type Notifier interface {
	NewPending(pendingCount int)
}

// Bell rings the terminal bell, the dashboard equivalent of the admin page's
// alert.mp3.
type Bell struct{}

func (Bell) NewPending(pendingCount int) {
	fmt.Fprint(os.Stdout, "\a")
}

// Telegram posts an alert message to a chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram builds a Telegram sink from a bot token and target chat.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) NewPending(pendingCount int) {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("🔔 New order! %d pending", pendingCount))
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("notify: telegram send failed: %v", err)
	}
}

// Multi fans an alert out to several sinks.
type Multi []Notifier

func (m Multi) NewPending(pendingCount int) {
	for _, n := range m {
		n.NewPending(pendingCount)
	}
}
