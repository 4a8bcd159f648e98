package telegram

import (
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Robert-K/telegram-group-counter/internal/service"
)

const (
	callbackIncrement = "increment"
	callbackDecrement = "decrement"
)

// MessageSender определяет интерфейс для отправки сообщений.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot     MessageSender
	Service service.BoardServiceInterface
}

func NewHandler(bot MessageSender, service service.BoardServiceInterface) *Handler {
	return &Handler{
		Bot:     bot,
		Service: service,
	}
}

// boardKeyboard - две кнопки под табло.
var boardKeyboard = tgbotapi.NewInlineKeyboardMarkup(
	tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕", callbackIncrement),
		tgbotapi.NewInlineKeyboardButtonData("➖", callbackDecrement),
	),
)

// HandleStart - /start: сброс табло и публикация нового сообщения.
// Старое табло, если было, просто перестает отслеживаться.
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	text := h.Service.Init(chatID)

	reply := tgbotapi.NewMessage(chatID, text)
	reply.ReplyMarkup = boardKeyboard
	sent, err := h.Bot.Send(reply)
	if err != nil {
		log.Printf("Failed to post scoreboard: %v", err)
		return
	}

	h.Service.SetBoardMessage(chatID, sent.MessageID)
	deleteMessage(h.Bot, chatID, msg.MessageID)
}

// HandleIncDec - /inc и /dec. Число в тексте задает величину шага
// (по умолчанию 1), упоминание @user переносит цель на другого.
func (h *Handler) HandleIncDec(msg *tgbotapi.Message, increment bool) {
	chatID := msg.Chat.ID
	cmd := service.ParseCommand(msg.Text)

	delta := 1.0
	if cmd.HasValue {
		delta = cmd.Value
	}
	if !increment {
		delta = -delta
	}

	update, err := h.Service.ApplyDelta(chatID, msg.From.ID, mentionHTML(msg.From), cmd.Mention, delta)
	if err != nil {
		h.reportError(chatID, err)
		return
	}

	h.pushBoard(chatID, update)
	deleteMessage(h.Bot, chatID, msg.MessageID)
}

// HandleSet - /set: прямое присваивание счёта. Число обязательно.
func (h *Handler) HandleSet(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	cmd := service.ParseCommand(msg.Text)

	if !cmd.HasValue {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Please provide a value to set."))
		return
	}

	update, err := h.Service.SetScore(chatID, msg.From.ID, mentionHTML(msg.From), cmd.Mention, cmd.Value)
	if err != nil {
		h.reportError(chatID, err)
		return
	}

	h.pushBoard(chatID, update)
	deleteMessage(h.Bot, chatID, msg.MessageID)
}

// HandleTitle - /title: смена заголовка табло, таблица очков не меняется.
func (h *Handler) HandleTitle(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	title, ok := service.ParseTitle(msg.Text)
	if !ok {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Usage: /title <new title>"))
		return
	}

	update := h.Service.SetTitle(chatID, title)
	h.pushBoard(chatID, update)
	deleteMessage(h.Bot, chatID, msg.MessageID)
}

// HandleTap обрабатывает нажатия кнопок под табло. Цель - всегда сам
// нажавший. Если табло не привязано к сообщению, счёт все равно
// сохраняется, просто показать его негде.
func (h *Handler) HandleTap(callback *tgbotapi.CallbackQuery, delta float64) {
	chatID := callback.Message.Chat.ID

	update, err := h.Service.ApplyDelta(chatID, callback.From.ID, mentionHTML(callback.From), "", delta)
	if err != nil {
		log.Printf("Failed to apply tap: %v", err)
		return
	}

	if update.MessageID == 0 {
		return
	}
	editBoard(h.Bot, chatID, update.MessageID, update.Text)
}

// pushBoard редактирует сообщение с табло или сообщает, что его нет.
func (h *Handler) pushBoard(chatID int64, update service.BoardUpdate) {
	if update.MessageID == 0 {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, "Scoreboard message not found."))
		return
	}
	editBoard(h.Bot, chatID, update.MessageID, update.Text)
}

func (h *Handler) reportError(chatID int64, err error) {
	var notFound *service.UserNotFoundError
	if errors.As(err, &notFound) {
		sendMessage(h.Bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("User %s not found.", notFound.Mention)))
		return
	}
	log.Printf("Failed to update score: %v", err)
}
