package service

import (
	"sort"
	"sync"
	"time"

	"layout-studio/internal/layout/anchored"
	"layout-studio/internal/layout/anchors"
	"layout-studio/internal/layout/tree"

	"github.com/google/uuid"
)

// ============================================================
// Editor Session
// ============================================================

// Session - открытый редактор: дерево макета и свободный холст.
// Доступ только через Do, мутации одной сессии не перемешиваются.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu     sync.Mutex
	tree   *tree.Engine
	canvas *anchored.Store
}

// Do выполняет fn с монопольным доступом к состоянию сессии.
func (s *Session) Do(fn func(t *tree.Engine, c *anchored.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tree, s.canvas)
}

// Panel - имя панели свойств для id, сначала ищем в дереве.
func Panel(t *tree.Engine, c *anchored.Store, id string) string {
	if p := t.Panel(id); p != tree.PanelNone {
		return p
	}
	return c.Panel(id)
}

// ============================================================
// Session Manager
// ============================================================

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	anchors  []anchors.Anchor
}

// NewSessionManager создает сессии, у холста которых по декорации на якорь.
func NewSessionManager(list []anchors.Anchor) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		anchors:  list,
	}
}

func (m *SessionManager) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		tree:      tree.New(),
		canvas:    anchored.New(m.anchors),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	return s, ok
}

func (m *SessionManager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// List возвращает id сессий в порядке создания.
func (m *SessionManager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	return ids
}
