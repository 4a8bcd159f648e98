package storage

import "sync"

// Registry владеет сессиями всех чатов. Сессия создается при первом
// обращении и живет до конца процесса; повторная инициализация чата
// сбрасывает сессию на месте, а не пересоздает ее.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*ChatSession
}

// NewRegistry - создание пустого реестра.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*ChatSession)}
}

// GetOrCreate возвращает сессию чата, создавая пустую при первом обращении.
func (r *Registry) GetOrCreate(chatID int64) *ChatSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[chatID]
	if !ok {
		session = NewChatSession()
		r.sessions[chatID] = session
	}
	return session
}

// Get возвращает сессию чата, если она уже существует.
func (r *Registry) Get(chatID int64) (*ChatSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[chatID]
	return session, ok
}
