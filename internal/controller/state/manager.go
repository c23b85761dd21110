package state

import (
	"sync"
)

// Manager управляет состояниями диалогов по чатам.
type Manager struct {
	mu     sync.Mutex
	states map[int64]*WizardState // chatID -> WizardState
}

// NewManager создаёт новый менеджер состояний.
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*WizardState),
	}
}

// Begin атомарно начинает новый диалог: прежний диалог чата,
// если он был, сносится вместе со всеми слотами.
func (m *Manager) Begin(chatID int64, kind WizardKind, step Step) WizardState {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := &WizardState{Kind: kind, Step: step, LessonIdx: -1}
	m.states[chatID] = st
	return *st
}

// Get возвращает снимок состояния диалога чата.
func (m *Manager) Get(chatID int64) (WizardState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[chatID]
	if !ok {
		return WizardState{LessonIdx: -1}, false
	}
	return *st, true
}

// Put сохраняет обновлённый снимок состояния.
func (m *Manager) Put(chatID int64, st WizardState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := st
	m.states[chatID] = &copied
}

// Kind возвращает вид активного диалога чата.
func (m *Manager) Kind(chatID int64) WizardKind {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.states[chatID]; ok {
		return st.Kind
	}
	return WizardNone
}

// Reset очищает все слоты диалога. Вызывается на каждом терминальном
// переходе: успех, отмена, ошибка или старт нового диалога.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatID)
}
