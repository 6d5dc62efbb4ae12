// Package notify forwards enrollment and contact submissions to a Telegram
// chat. Delivery is best effort: a missing token, an unreachable API or a
// rejected message never surface to the caller.
package notify

import (
	"fmt"
	"log"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *log.Logger
}

// New builds a notifier from the bot credentials. Either credential missing
// or invalid yields a disabled notifier whose Send is a no-op.
func New(botToken, chatID string, logger *log.Logger) *Notifier {
	n := &Notifier{log: logger}

	if botToken == "" || chatID == "" {
		logger.Println("Telegram notifications disabled: bot token or chat id not configured")
		return n
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		logger.Printf("Telegram notifications disabled: invalid chat id: %v", err)
		return n
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		logger.Printf("Telegram notifications disabled: %v", err)
		return n
	}

	n.bot = bot
	n.chatID = id
	return n
}

func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

// Send posts one HTML-formatted message. Failures are logged and swallowed.
func (n *Notifier) Send(text string) {
	if n.bot == nil {
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		n.log.Printf("Telegram send failed: %v", err)
	}
}

// SendEnrollment notifies about a new course enrollment.
func (n *Notifier) SendEnrollment(name, phone, course, category string) {
	n.Send(enrollmentMessage(name, phone, course, category, time.Now()))
}

// SendContact notifies about a contact-form submission.
func (n *Notifier) SendContact(name, phone, message string) {
	n.Send(contactMessage(name, phone, message, time.Now()))
}

func enrollmentMessage(name, phone, course, category string, at time.Time) string {
	return fmt.Sprintf(
		"🎓 <b>Yangi kursga yozilish!</b>\n\n"+
			"👤 <b>Ism:</b> %s\n"+
			"📞 <b>Telefon:</b> %s\n"+
			"📚 <b>Kurs:</b> %s\n"+
			"📍 <b>Kategoriya:</b> %s\n"+
			"📅 <b>Sana:</b> %s",
		name, phone, course, category, at.Format("2006-01-02 15:04"))
}

func contactMessage(name, phone, message string, at time.Time) string {
	text := fmt.Sprintf(
		"✉️ <b>Yangi xabar!</b>\n\n"+
			"👤 <b>Ism:</b> %s\n"+
			"📞 <b>Telefon:</b> %s\n"+
			"📅 <b>Sana:</b> %s",
		name, phone, at.Format("2006-01-02 15:04"))
	if message != "" {
		text += fmt.Sprintf("\n💬 <b>Xabar:</b> %s", message)
	}
	return text
}
