package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 9))
	assert.Equal(t, 1, PageCount(1, 9))
	assert.Equal(t, 1, PageCount(9, 9))
	assert.Equal(t, 2, PageCount(10, 9))
	assert.Equal(t, 3, PageCount(19, 9))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(-1, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 2, ClampPage(5, 3))
	assert.Equal(t, 0, ClampPage(1, 0))
}

func TestPaginationButtons_SinglePage(t *testing.T) {
	assert.Nil(t, PaginationButtons("PG|", 0, 1))
	assert.Nil(t, PaginationButtons("PG|", 0, 0))
}

func TestPaginationButtons_FirstPageOmitsPrev(t *testing.T) {
	buttons := PaginationButtons("PG|", 0, 3)
	require.Len(t, buttons, 2)

	assert.Equal(t, "📄 1/3", buttons[0].Text)
	assert.Equal(t, "noop", buttons[0].CallbackData)
	assert.Equal(t, "PG|1", buttons[1].CallbackData)
}

func TestPaginationButtons_MiddlePageHasBoth(t *testing.T) {
	buttons := PaginationButtons("PG|", 1, 3)
	require.Len(t, buttons, 3)

	assert.Equal(t, "PG|0", buttons[0].CallbackData)
	assert.Equal(t, "📄 2/3", buttons[1].Text)
	assert.Equal(t, "PG|2", buttons[2].CallbackData)
}

func TestPaginationButtons_LastPageOmitsNext(t *testing.T) {
	buttons := PaginationButtons("PG|", 2, 3)
	require.Len(t, buttons, 2)

	assert.Equal(t, "PG|1", buttons[0].CallbackData)
	assert.Equal(t, "📄 3/3", buttons[1].Text)
}
