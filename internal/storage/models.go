package storage

import (
	"strings"
	"sync"
)

// DefaultTitle - заголовок табло, пока его не поменяли через /title.
const DefaultTitle = "Scoreboard"

// ScoreEntry хранит последнее имя пользователя и его текущий счёт.
type ScoreEntry struct {
	DisplayName string
	Score       float64
}

// ChatSession - состояние одного чата: заголовок, ID сообщения с табло
// и таблица очков в порядке появления пользователей.
//
// Вызывающий держит Lock на время чтения-изменения таблицы и рендера.
type ChatSession struct {
	mu sync.Mutex

	Title          string
	BoardMessageID int

	order   []int64
	entries map[int64]*ScoreEntry
}

// NewChatSession создает пустую сессию с заголовком по умолчанию.
func NewChatSession() *ChatSession {
	return &ChatSession{
		Title:   DefaultTitle,
		entries: make(map[int64]*ScoreEntry),
	}
}

func (s *ChatSession) Lock()   { s.mu.Lock() }
func (s *ChatSession) Unlock() { s.mu.Unlock() }

// Reset возвращает сессию к начальному состоянию: пустая таблица,
// заголовок по умолчанию, табло не привязано.
func (s *ChatSession) Reset() {
	s.Title = DefaultTitle
	s.BoardMessageID = 0
	s.order = nil
	s.entries = make(map[int64]*ScoreEntry)
}

// Upsert возвращает запись пользователя, создавая ее с нулевым счётом при
// первом обращении, и обновляет имя на последнее увиденное.
func (s *ChatSession) Upsert(userID int64, displayName string) *ScoreEntry {
	entry, ok := s.entries[userID]
	if !ok {
		entry = &ScoreEntry{Score: 0.0}
		s.entries[userID] = entry
		s.order = append(s.order, userID)
	}
	entry.DisplayName = displayName
	return entry
}

// FindByMention ищет первую запись (в порядке появления), чье имя содержит
// упомянутый токен. Сравнение чувствительно к регистру. Возвращает nil,
// если никого не нашли.
func (s *ChatSession) FindByMention(token string) *ScoreEntry {
	for _, id := range s.order {
		if entry := s.entries[id]; strings.Contains(entry.DisplayName, token) {
			return entry
		}
	}
	return nil
}

// Entries возвращает копию таблицы очков в порядке появления пользователей.
func (s *ChatSession) Entries() []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, *s.entries[id])
	}
	return entries
}

// Len - количество записей в таблице.
func (s *ChatSession) Len() int {
	return len(s.order)
}
