package telegram

import (
	"fmt"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func sendMessage(bot MessageSender, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// deleteMessage убирает сообщение-команду из чата. Ошибка не критична:
// табло уже обновлено.
func deleteMessage(bot MessageSender, chatID int64, messageID int) {
	if _, err := bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("Failed to delete message %d: %v", messageID, err)
	}
}

// editBoard обновляет текст сообщения с табло, сохраняя кнопки.
func editBoard(bot MessageSender, chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, boardKeyboard)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Failed to edit scoreboard message %d: %v", messageID, err)
	}
}

// mentionHTML форматирует имя пользователя как кликабельное упоминание.
func mentionHTML(user *tgbotapi.User) string {
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(name))
}
