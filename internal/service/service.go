package service

import (
	"fmt"

	"github.com/Robert-K/telegram-group-counter/internal/storage"
)

// UserNotFoundError - упомянутый пользователь не найден в таблице очков.
type UserNotFoundError struct {
	Mention string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.Mention)
}

// BoardUpdate - результат операции над табло: новый текст и ID сообщения,
// которое нужно отредактировать. MessageID == 0 означает, что табло еще
// не привязано к сообщению (чат не инициализирован через /start).
type BoardUpdate struct {
	Text      string
	MessageID int
}

// BoardServiceInterface определяет операции над табло для хендлеров.
type BoardServiceInterface interface {
	Init(chatID int64) string
	SetBoardMessage(chatID int64, messageID int)
	ApplyDelta(chatID, userID int64, displayName, mention string, delta float64) (BoardUpdate, error)
	SetScore(chatID, userID int64, displayName, mention string, value float64) (BoardUpdate, error)
	SetTitle(chatID int64, title string) BoardUpdate
}

type BoardService struct {
	registry *storage.Registry
}

func New(registry *storage.Registry) *BoardService {
	return &BoardService{registry: registry}
}

// Init полностью сбрасывает сессию чата и возвращает текст пустого табло.
// Привязка к новому сообщению делается отдельно через SetBoardMessage,
// когда транспорт узнает его ID.
func (b *BoardService) Init(chatID int64) string {
	session := b.registry.GetOrCreate(chatID)
	session.Lock()
	defer session.Unlock()

	session.Reset()
	return FormatBoard(session.Title, nil)
}

// SetBoardMessage запоминает сообщение, в котором живет табло чата.
func (b *BoardService) SetBoardMessage(chatID int64, messageID int) {
	session := b.registry.GetOrCreate(chatID)
	session.Lock()
	defer session.Unlock()

	session.BoardMessageID = messageID
}

// ApplyDelta прибавляет delta к счёту цели. Цель - первый пользователь,
// чье имя содержит mention, либо сам отправитель, если mention пуст.
func (b *BoardService) ApplyDelta(chatID, userID int64, displayName, mention string, delta float64) (BoardUpdate, error) {
	return b.mutate(chatID, userID, displayName, mention, delta, false)
}

// SetScore устанавливает счёт цели напрямую. Разрешение цели как в ApplyDelta.
func (b *BoardService) SetScore(chatID, userID int64, displayName, mention string, value float64) (BoardUpdate, error) {
	return b.mutate(chatID, userID, displayName, mention, value, true)
}

func (b *BoardService) mutate(chatID, userID int64, displayName, mention string, value float64, set bool) (BoardUpdate, error) {
	session := b.registry.GetOrCreate(chatID)
	session.Lock()
	defer session.Unlock()

	var entry *storage.ScoreEntry
	if mention != "" {
		entry = session.FindByMention(mention)
		if entry == nil {
			return BoardUpdate{}, &UserNotFoundError{Mention: mention}
		}
	} else {
		entry = session.Upsert(userID, displayName)
	}

	if set {
		entry.Score = value
	} else {
		entry.Score += value
	}

	return BoardUpdate{
		Text:      FormatBoard(session.Title, session.Entries()),
		MessageID: session.BoardMessageID,
	}, nil
}

// SetTitle меняет заголовок табло, не трогая таблицу очков.
func (b *BoardService) SetTitle(chatID int64, title string) BoardUpdate {
	session := b.registry.GetOrCreate(chatID)
	session.Lock()
	defer session.Unlock()

	session.Title = title
	return BoardUpdate{
		Text:      FormatBoard(session.Title, session.Entries()),
		MessageID: session.BoardMessageID,
	}
}
