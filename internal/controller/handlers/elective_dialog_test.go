package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/controller/state"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
	"github.com/kaidigital/schedulekai_bot/internal/service"
)

// telegramRecorder — фейковый Bot API сервер, записывающий тела запросов.
type telegramRecorder struct {
	mu     sync.Mutex
	bodies []string
}

func (rec *telegramRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		rec.mu.Lock()
		rec.bodies = append(rec.bodies, string(raw))
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{}}`))
	})
}

// sent сообщает, отправлял ли бот запрос с данной подстрокой.
func (rec *telegramRecorder) sent(substr string) bool {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	for _, body := range rec.bodies {
		if strings.Contains(body, substr) {
			return true
		}
	}
	return false
}

func newTestBot(t *testing.T) (*bot.Bot, *telegramRecorder) {
	t.Helper()

	rec := &telegramRecorder{}
	srv := httptest.NewServer(rec.handler())
	t.Cleanup(srv.Close)

	b, err := bot.New("123:test", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)
	return b, rec
}

func newTestHandlers(t *testing.T, api http.Handler) (*Handlers, *state.Manager) {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := scheduleapi.New(srv.URL, zap.NewNop())
	t.Cleanup(client.Close)

	states := state.NewManager()
	h := NewHandlers(
		service.NewGroupService(client, zap.NewNop()),
		service.NewElectiveService(client, zap.NewNop()),
		service.NewScheduleService(client, zap.NewNop()),
		states,
		time.UTC,
		zap.NewNop(),
	)
	return h, states
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			Text: text,
			Chat: models.Chat{ID: chatID, Type: models.ChatTypePrivate},
			From: &models.User{ID: chatID},
		},
	}
}

func beginElectiveNameStep(states *state.Manager, chatID int64) {
	st := states.Begin(chatID, state.WizardElectiveAdd, state.StepElectiveName)
	st.SourceID = 7701
	states.Put(chatID, st)
}

func TestLessonNameInput_TooManyMatchesKeepsStep(t *testing.T) {
	h, states := newTestHandlers(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/elective/lessons", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Too many elements found, refine your search"))
	}))
	b, rec := newTestBot(t)

	beginElectiveNameStep(states, 42)
	h.HandleTextMessage(context.Background(), b, textUpdate(42, "а"))

	// Диалог остаётся на шаге ввода названия, слоты не заполняются.
	st, ok := states.Get(42)
	require.True(t, ok)
	assert.Equal(t, state.WizardElectiveAdd, st.Kind)
	assert.Equal(t, state.StepElectiveName, st.Step)
	assert.Empty(t, st.Lessons)

	assert.True(t, rec.sent("Забагато збігів"), "user must be asked to refine the query")
	assert.False(t, rec.sent("Оберіть предмет"), "lesson keyboard must not be rendered")
}

func TestLessonNameInput_NotFoundKeepsStep(t *testing.T) {
	h, states := newTestHandlers(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	b, rec := newTestBot(t)

	beginElectiveNameStep(states, 42)
	h.HandleTextMessage(context.Background(), b, textUpdate(42, "ъъъ"))

	st, ok := states.Get(42)
	require.True(t, ok)
	assert.Equal(t, state.StepElectiveName, st.Step)
	assert.True(t, rec.sent("Нічого не знайдено"))
}

func TestLessonNameInput_ResultsAdvanceToLessonStep(t *testing.T) {
	h, states := newTestHandlers(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Філософія","sourceId":9003,"availableTypes":["Лекція"],"subgroups":[]}]`))
	}))
	b, rec := newTestBot(t)

	beginElectiveNameStep(states, 42)
	h.HandleTextMessage(context.Background(), b, textUpdate(42, "філос"))

	st, ok := states.Get(42)
	require.True(t, ok)
	assert.Equal(t, state.StepElectiveLesson, st.Step)
	require.Len(t, st.Lessons, 1)
	assert.Equal(t, "Філософія", st.Lessons[0].Name)

	assert.True(t, rec.sent("Оберіть предмет"))
}

func TestTextOutsideDialogIsIgnored(t *testing.T) {
	h, states := newTestHandlers(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected without an active dialog")
	}))
	b, rec := newTestBot(t)

	h.HandleTextMessage(context.Background(), b, textUpdate(42, "привіт"))

	_, ok := states.Get(42)
	assert.False(t, ok)
	assert.Empty(t, rec.bodies)
}
