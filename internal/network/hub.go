package network

import (
	"sync"

	"crawl-server/internal/engine"
)

// Registry - реестр живых сессий. Каждое подключение владеет своей
// партией, реестр нужен наблюдателям: debug-эндпоинтам и сохранению
// повторов при остановке сервера.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*engine.Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*engine.Session),
	}
}

// Register добавляет сессию в реестр.
func (r *Registry) Register(s *engine.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Unregister убирает сессию из реестра.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get возвращает сессию по ID или nil.
func (r *Registry) Get(id string) *engine.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Each вызывает fn для каждой сессии под блокировкой чтения.
// fn не должна трогать реестр.
func (r *Registry) Each(fn func(s *engine.Session)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		fn(s)
	}
}

// Count возвращает количество живых сессий.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
