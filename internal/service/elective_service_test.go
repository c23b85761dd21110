package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaidigital/schedulekai_bot/internal/model"
	"github.com/kaidigital/schedulekai_bot/internal/scheduleapi"
)

func newElectiveService(t *testing.T, handler http.Handler) *ElectiveService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := scheduleapi.New(srv.URL, zap.NewNop())
	t.Cleanup(api.Close)
	return NewElectiveService(api, zap.NewNop())
}

func TestTypes_PrefersDescriptorOverAPI(t *testing.T) {
	s := newElectiveService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected when descriptor carries types")
	}))

	lesson := model.LessonDescriptor{
		Name:           "Філософія",
		SourceID:       9003,
		AvailableTypes: []string{"Лекція", "Практика"},
	}

	types, err := s.Types(context.Background(), lesson)
	require.NoError(t, err)
	assert.Equal(t, []string{"Лекція", "Практика"}, types)
}

func TestTypes_FallsBackToAPI(t *testing.T) {
	s := newElectiveService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/elective/types", r.URL.Path)
		assert.Equal(t, "Філософія", r.URL.Query().Get("lessonName"))
		w.Write([]byte(`["Лекція"]`))
	}))

	types, err := s.Types(context.Background(), model.LessonDescriptor{Name: "Філософія", SourceID: 9003})
	require.NoError(t, err)
	assert.Equal(t, []string{"Лекція"}, types)
}

func TestSubgroups_PrefersDescriptorOverAPI(t *testing.T) {
	s := newElectiveService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected when descriptor carries subgroups")
	}))

	lesson := model.LessonDescriptor{Name: "Філософія", Subgroups: []int{-1, 1, 2}}

	subgroups, err := s.Subgroups(context.Background(), lesson, "Лекція")
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 1, 2}, subgroups)
}

func TestEnroll_SendsSourceIDAsID(t *testing.T) {
	s := newElectiveService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/elective", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(9003), body["id"])
	}))

	lesson := model.LessonDescriptor{ID: 555, Name: "Філософія", SourceID: 9003}
	err := s.Enroll(context.Background(), 42, lesson, "Лекція", model.NoSubgroup)
	require.NoError(t, err)
}
