package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertType_AcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AlertType
	}{
		{"enum name", `{"alertType":"GroupRemoved"}`, AlertGroupRemoved},
		{"numeric group removed", `{"alertType":1}`, AlertGroupRemoved},
		{"numeric elective removed", `{"alertType":2}`, AlertElectiveLessonRemoved},
		{"unknown number", `{"alertType":99}`, AlertNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var alert UserAlert
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &alert))
			assert.Equal(t, tt.want, alert.AlertType)
		})
	}
}

func TestAlertType_RejectsGarbage(t *testing.T) {
	var alert UserAlert
	err := json.Unmarshal([]byte(`{"alertType":{"x":1}}`), &alert)
	assert.Error(t, err)
}

func TestRealSubgroups(t *testing.T) {
	assert.Equal(t, []int{1, 2}, RealSubgroups([]int{-1, 1, 2}))
	assert.Empty(t, RealSubgroups([]int{-1}))
	assert.Empty(t, RealSubgroups(nil))
}
