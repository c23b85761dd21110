package callbacks

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
	"github.com/kaidigital/schedulekai_bot/internal/model"
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

func newTestHandler(t *testing.T, api http.Handler) (*Handler, *state.Manager) {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := scheduleapi.New(srv.URL, zap.NewNop())
	t.Cleanup(client.Close)

	states := state.NewManager()
	h := NewHandler(
		service.NewGroupService(client, zap.NewNop()),
		service.NewElectiveService(client, zap.NewNop()),
		service.NewScheduleService(client, zap.NewNop()),
		states,
		time.UTC,
		zap.NewNop(),
	)
	return h, states
}

func callbackFrom(chatID int64) *models.CallbackQuery {
	return &models.CallbackQuery{
		ID:   "cb-1",
		From: models.User{ID: chatID},
		Message: models.MaybeInaccessibleMessage{
			Message: &models.Message{
				ID:   10,
				Chat: models.Chat{ID: chatID, Type: models.ChatTypePrivate},
			},
		},
	}
}

// beginLessonStep подготавливает диалог на шаге выбора дисциплины.
func beginLessonStep(states *state.Manager, chatID int64, lesson model.LessonDescriptor) {
	st := states.Begin(chatID, state.WizardElectiveAdd, state.StepElectiveLesson)
	st.SourceID = 7701
	st.Lessons = []model.LessonDescriptor{lesson}
	states.Put(chatID, st)
}

func TestLessonChosen_SingleTypeSkipsTypeStep(t *testing.T) {
	h, states := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no API call expected, descriptor carries types and subgroups: %s", r.URL.Path)
	}))
	b, rec := newTestBot(t)

	beginLessonStep(states, 42, model.LessonDescriptor{
		ID:             1,
		Name:           "Філософія",
		SourceID:       9003,
		AvailableTypes: []string{"Лекція"},
		Subgroups:      []int{-1, 1, 2},
	})

	h.HandleLessonChosen(context.Background(), b, callbackFrom(42), []string{"0"})

	// Единственный вид занятий выбирается автоматически: диалог попадает
	// сразу на шаг подгруппы.
	st, ok := states.Get(42)
	require.True(t, ok)
	assert.Equal(t, state.StepElectiveSubgroup, st.Step)
	assert.Equal(t, "Лекція", st.LessonType)

	assert.False(t, rec.sent("Оберіть вид занять"), "type keyboard must not be rendered")
	assert.True(t, rec.sent("Оберіть підгрупу"))
}

func TestLessonChosen_MultipleTypesRenderTypeStep(t *testing.T) {
	h, states := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no API call expected: %s", r.URL.Path)
	}))
	b, rec := newTestBot(t)

	beginLessonStep(states, 42, model.LessonDescriptor{
		ID:             1,
		Name:           "Філософія",
		SourceID:       9003,
		AvailableTypes: []string{"Лекція", "Практика"},
		Subgroups:      []int{1, 2},
	})

	h.HandleLessonChosen(context.Background(), b, callbackFrom(42), []string{"0"})

	st, ok := states.Get(42)
	require.True(t, ok)
	assert.Equal(t, state.StepElectiveType, st.Step)
	assert.Equal(t, []string{"Лекція", "Практика"}, st.Types)
	assert.True(t, rec.sent("Оберіть вид занять"))
}

func TestLessonChosen_NoRealSubgroupsSubmitsImmediately(t *testing.T) {
	var enrolled bool
	h, states := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/elective", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		enrolled = true
	}))
	b, rec := newTestBot(t)

	beginLessonStep(states, 42, model.LessonDescriptor{
		ID:             1,
		Name:           "Філософія",
		SourceID:       9003,
		AvailableTypes: []string{"Лекція"},
		Subgroups:      []int{-1},
	})

	h.HandleLessonChosen(context.Background(), b, callbackFrom(42), []string{"0"})

	// Без реальных подгрупп запись оформляется сразу, диалог завершён.
	assert.True(t, enrolled)
	_, ok := states.Get(42)
	assert.False(t, ok)
	assert.True(t, rec.sent("успішно додано"))
}

func TestLessonChosen_StaleCallbackIsNoop(t *testing.T) {
	h, states := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no API call expected for stale callback: %s", r.URL.Path)
	}))
	b, rec := newTestBot(t)

	// Диалога нет: нажатие по старой клавиатуре.
	h.HandleLessonChosen(context.Background(), b, callbackFrom(42), []string{"0"})

	_, ok := states.Get(42)
	assert.False(t, ok)
	assert.True(t, rec.sent("Вибір застарів"))
}
