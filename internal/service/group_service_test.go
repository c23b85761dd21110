package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

func newGroupService(t *testing.T, handler http.Handler) *GroupService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := scheduleapi.New(srv.URL, zap.NewNop())
	t.Cleanup(api.Close)
	return NewGroupService(api, zap.NewNop())
}

func TestCheckGroup_NormalizesBeforeLookup(t *testing.T) {
	var queried string
	s := newGroupService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/group/exist", r.URL.Path)
		queried = r.URL.Query().Get("groupName")
		w.Write([]byte(`true`))
	}))

	name, exists, err := s.CheckGroup(context.Background(), "bek-121")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "век-121", name)
	assert.Equal(t, "век-121", queried)
}

func TestAssignGroup_RegistersUnknownUserAndRetries(t *testing.T) {
	var calls []string
	s := newGroupService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		switch {
		case r.URL.Path == "/api/user/group" && len(calls) == 1:
			// Первый вызов: пользователь ещё не зарегистрирован.
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/api/user":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "42", r.URL.Query().Get("telegramId"))
		case r.URL.Path == "/api/user/group":
			assert.Equal(t, "век-121", r.URL.Query().Get("groupName"))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	err := s.AssignGroup(context.Background(), 42, "век-121", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"PUT /api/user/group",
		"POST /api/user",
		"PUT /api/user/group",
	}, calls)
}

func TestAssignGroup_ServerErrorDoesNotRegister(t *testing.T) {
	var userCreated bool
	s := newGroupService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/user" {
			userCreated = true
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := s.AssignGroup(context.Background(), 42, "век-121", 1)
	require.Error(t, err)
	assert.True(t, scheduleapi.IsTransient(err))
	assert.False(t, userCreated, "5xx must not trigger user registration")
}

func TestUserGroup_EmptyMeansUnbound(t *testing.T) {
	s := newGroupService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	group, err := s.UserGroup(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, group)
}
