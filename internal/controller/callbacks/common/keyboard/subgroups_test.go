package keyboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubgroupRows_SentinelBecomesAllButton(t *testing.T) {
	rows := SubgroupRows("GR_SUB|", []int{-1, 1, 2})
	require.Len(t, rows, 3)

	assert.Equal(t, "Підгрупа 1", rows[0][0].Text)
	assert.Equal(t, "GR_SUB|1", rows[0][0].CallbackData)
	assert.Equal(t, "Підгрупа 2", rows[1][0].Text)

	assert.Equal(t, "Для всіх підгруп", rows[2][0].Text)
	assert.Equal(t, "GR_SUB|-1", rows[2][0].CallbackData)

	// Сентинел никогда не показывается числом.
	for _, row := range rows {
		for _, btn := range row {
			assert.False(t, strings.Contains(btn.Text, "-1"),
				"sentinel leaked into label %q", btn.Text)
		}
	}
}

func TestSubgroupRows_EmptyListStillOffersAll(t *testing.T) {
	rows := SubgroupRows("EL_SUB|", nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Для всіх підгруп", rows[0][0].Text)
	assert.Equal(t, "EL_SUB|-1", rows[0][0].CallbackData)
}

func TestSubgroupRows_OnlyRealSubgroups(t *testing.T) {
	rows := SubgroupRows("EL_SUB|", []int{2, 3})
	require.Len(t, rows, 2)
	assert.Equal(t, "Підгрупа 2", rows[0][0].Text)
	assert.Equal(t, "Підгрупа 3", rows[1][0].Text)
}
