package parkingapi

import (
	"context"
	"sync"
)

// Session хранит bearer-токен текущего пользователя
// Выставляется при логине, очищается при логауте
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession создает пустую сессию
func NewSession() *Session {
	return &Session{}
}

// NewSessionWithToken создает сессию с уже известным токеном
func NewSessionWithToken(token string) *Session {
	return &Session{token: token}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// CurrentToken возвращает токен и признак его наличия
func (s *Session) CurrentToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

type sessionKey struct{}

// ContextWithSession привязывает сессию к контексту запроса
// Клиент берет токен из нее вместо своей сессии по умолчанию
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
